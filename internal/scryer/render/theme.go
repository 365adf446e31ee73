package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Labels is the replaceable text set used by the default sub-renderers.
// Every field has a default; overriding one never affects the others.
type Labels struct {
	InProgress     string
	Executing      string
	Complete       string
	Empty          string
	Loading        string
	Newest         string
	Approve        string
	Reject         string
	Approved       string
	Rejected       string
	FeedbackSent   string
	FeedbackPrompt string
	Degraded       string
}

// Icons is the replaceable icon set.
type Icons struct {
	Tool     string
	Task     string
	Newest   string
	Approve  string
	Reject   string
	Skeleton string
	Error    string
}

// Styles are the lipgloss style hooks applied by the default sub-renderers.
type Styles struct {
	Header     lipgloss.Style
	Item       lipgloss.Style
	NewestItem lipgloss.Style
	Reasoning  lipgloss.Style
	Result     lipgloss.Style
	Skeleton   lipgloss.Style
	Empty      lipgloss.Style
	Content    lipgloss.Style
	Button     lipgloss.Style
	Done       lipgloss.Style
	Degraded   lipgloss.Style
}

// Theme bundles labels, icons and styles. Renderers deep-copy the theme at
// construction so later caller mutation cannot leak into rendered output.
type Theme struct {
	Labels Labels
	Icons  Icons
	Styles Styles
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Labels: Labels{
			InProgress:     "working",
			Executing:      "executing",
			Complete:       "done",
			Empty:          "No items yet.",
			Loading:        "Waiting for the agent...",
			Newest:         "latest",
			Approve:        "[a] approve",
			Reject:         "[r] reject",
			Approved:       "Feedback sent: approved.",
			Rejected:       "Feedback sent: rejected.",
			FeedbackSent:   "Feedback sent.",
			FeedbackPrompt: "Approve or reject this response?",
			Degraded:       "(malformed item)",
		},
		Icons: Icons{
			Tool:     "⚙",
			Task:     "◆",
			Newest:   "▸",
			Approve:  "✓",
			Reject:   "✗",
			Skeleton: "…",
			Error:    "!",
		},
		Styles: Styles{
			Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
			Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			NewestItem: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Reasoning:  lipgloss.NewStyle().Faint(true),
			Result:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Skeleton:   lipgloss.NewStyle().Faint(true),
			Empty:      lipgloss.NewStyle().Faint(true).Italic(true),
			Content:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Button:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			Done:       lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
			Degraded:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("196")),
		},
	}
}

// StatusLabel returns the theme label for a response status.
func (t Theme) StatusLabel(status string) string {
	switch status {
	case "inProgress":
		return t.Labels.InProgress
	case "executing":
		return t.Labels.Executing
	case "complete":
		return t.Labels.Complete
	default:
		return status
	}
}
