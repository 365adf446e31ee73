package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

// StateRenderer is a pure projection from (AgentState, ResponseStatus) to a
// terminal frame. It never mutates its inputs and performs no I/O.
type StateRenderer struct {
	cfg Config
}

// NewStateRenderer builds a renderer, resolving unset config options to
// their defaults.
func NewStateRenderer(cfg Config) *StateRenderer {
	return &StateRenderer{cfg: cfg.withDefaults()}
}

// Render produces the frame for the given snapshot. state may be nil.
func (r *StateRenderer) Render(state *entity.AgentState, status entity.ResponseStatus) string {
	theme := *r.cfg.Theme

	var b strings.Builder
	b.WriteString(theme.Styles.Header.Render(theme.StatusLabel(string(status))))
	b.WriteString("\n")

	switch {
	case state.Empty() && status == entity.StatusInProgress:
		b.WriteString(r.cfg.Skeleton(theme))
	case state.Empty():
		b.WriteString(r.cfg.Empty(theme))
	case r.cfg.Collapsed:
		b.WriteString(theme.Styles.Item.Render(fmt.Sprintf("%d items (collapsed)", state.Len())))
	default:
		items := state.Items()
		for i, item := range items {
			newest := i == len(items)-1
			b.WriteString(r.cfg.Item(item, newest, theme))
			if i < len(items)-1 {
				b.WriteString("\n")
			}
		}
	}

	return clamp(b.String(), r.cfg)
}

// defaultItemRenderer renders one item as an icon, its name, and any
// optional detail lines. Malformed items degrade to a placeholder so one
// bad item never aborts the whole frame.
func defaultItemRenderer(item entity.StateItem, newest bool, theme Theme) string {
	if err := item.Validate(); err != nil {
		return theme.Styles.Degraded.Render(
			fmt.Sprintf("%s %s %s", theme.Icons.Error, theme.Labels.Degraded, item.ItemID()))
	}

	style := theme.Styles.Item
	marker := " "
	if newest {
		style = theme.Styles.NewestItem
		marker = theme.Icons.Newest
	}

	var b strings.Builder
	switch it := item.(type) {
	case entity.ToolStateItem:
		b.WriteString(style.Render(fmt.Sprintf("%s %s %s", marker, theme.Icons.Tool, it.Tool)))
		if it.Reasoning != "" {
			wrapped := wordwrap.WrapString(it.Reasoning, defaultWidth-4)
			for _, line := range strings.Split(wrapped, "\n") {
				b.WriteString("\n")
				b.WriteString(theme.Styles.Reasoning.Render("    " + line))
			}
		}
		if summary := resultSummary(it.Result); summary != "" {
			b.WriteString("\n")
			b.WriteString(theme.Styles.Result.Render("    → " + summary))
		}
	case entity.TaskStateItem:
		b.WriteString(style.Render(fmt.Sprintf("%s %s %s", marker, theme.Icons.Task, it.Name)))
		if it.Description != "" {
			b.WriteString("\n")
			b.WriteString(theme.Styles.Reasoning.Render("    " + it.Description))
		}
	default:
		b.WriteString(style.Render(fmt.Sprintf("%s %s", marker, item.ItemID())))
	}
	return b.String()
}

// resultSummary decodes the opaque result payload only as far as a one-line
// display summary. Producers own the shape; anything undecodable is shown
// raw and truncated.
func resultSummary(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return truncate(s, 120)
	}
	return truncate(string(raw), 120)
}

func defaultSkeletonRenderer(theme Theme) string {
	frame := spinner.Dot.Frames[0]
	var b strings.Builder
	b.WriteString(theme.Styles.Skeleton.Render(frame + " " + theme.Labels.Loading))
	for i := 0; i < 2; i++ {
		b.WriteString("\n")
		b.WriteString(theme.Styles.Skeleton.Render("  " + strings.Repeat(theme.Icons.Skeleton, 12)))
	}
	return b.String()
}

func defaultEmptyRenderer(theme Theme) string {
	return theme.Styles.Empty.Render(theme.Labels.Empty)
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// clamp constrains a frame to the configured width and height. Width is
// enforced per line, ANSI-aware; MaxHeight <= 0 means unbounded.
func clamp(s string, cfg Config) string {
	if cfg.Width > 0 {
		s = lipgloss.NewStyle().MaxWidth(cfg.Width).Render(s)
	}
	if cfg.MaxHeight <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= cfg.MaxHeight {
		return s
	}
	return strings.Join(lines[:cfg.MaxHeight], "\n")
}
