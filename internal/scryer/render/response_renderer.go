package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

// FeedbackView tells the renderer what the feedback layer knows about a
// response. Enabled means a callback was supplied; Done is the recorded
// decision, if any. The renderer itself never records decisions.
type FeedbackView struct {
	Enabled bool
	Done    *entity.FeedbackRecord
}

// ResponseRenderer is a pure projection from (Response, ResponseStatus,
// FeedbackView) to a terminal frame.
//
// Feedback controls appear only while the status accepts feedback, a
// callback was supplied, and no decision has been recorded yet. Once a
// decision exists the completed display renders instead, permanently.
type ResponseRenderer struct {
	cfg Config
}

// NewResponseRenderer builds a renderer, resolving unset config options to
// their defaults.
func NewResponseRenderer(cfg Config) *ResponseRenderer {
	return &ResponseRenderer{cfg: cfg.withDefaults()}
}

// Render produces the frame for a response. resp may be nil, in which case
// nothing renders.
func (r *ResponseRenderer) Render(resp *entity.Response, status entity.ResponseStatus, fb FeedbackView) string {
	if resp == nil {
		return ""
	}
	theme := *r.cfg.Theme

	var b strings.Builder
	b.WriteString(r.cfg.Content(resp, theme))

	switch {
	case fb.Done != nil:
		b.WriteString("\n\n")
		b.WriteString(r.cfg.FeedbackDone(fb.Done, theme))
	case fb.Enabled && status.AcceptsFeedback():
		b.WriteString("\n\n")
		b.WriteString(r.cfg.FeedbackButtons(theme))
	}

	return clamp(b.String(), r.cfg)
}

// PlainContent is the default content sub-renderer: the response text as-is.
func PlainContent(resp *entity.Response, theme Theme) string {
	return theme.Styles.Content.Render(resp.Content)
}

// MarkdownContent renders the response text as terminal markdown. Falls
// back to the raw text when glamour cannot render it.
func MarkdownContent(width int) ContentRenderer {
	if width <= 0 {
		width = defaultWidth
	}
	return func(resp *entity.Response, theme Theme) string {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithColorProfile(termenv.ANSI256),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return resp.Content
		}
		rendered, err := r.Render(resp.Content)
		if err != nil {
			return resp.Content
		}
		return strings.TrimRight(rendered, "\n")
	}
}

func defaultFeedbackButtons(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Styles.Header.Render(theme.Labels.FeedbackPrompt))
	b.WriteString("\n")
	b.WriteString(theme.Styles.Button.Render(theme.Icons.Approve + " " + theme.Labels.Approve))
	b.WriteString("   ")
	b.WriteString(theme.Styles.Button.Render(theme.Icons.Reject + " " + theme.Labels.Reject))
	return b.String()
}

func defaultFeedbackDone(record *entity.FeedbackRecord, theme Theme) string {
	switch record.Decision {
	case entity.FeedbackApproved:
		return theme.Styles.Done.Render(theme.Icons.Approve + " " + theme.Labels.Approved)
	case entity.FeedbackRejected:
		return theme.Styles.Done.Render(theme.Icons.Reject + " " + theme.Labels.Rejected)
	default:
		return theme.Styles.Done.Render(theme.Labels.FeedbackSent)
	}
}
