package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/feedback"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
	"github.com/kiosk404/scryer/internal/scryer/render"
	"github.com/kiosk404/scryer/internal/scryer/stream"
	"github.com/kiosk404/scryer/pkg/log"
)

type (
	eventMsg struct{ event *entity.StreamEvent }
	errMsg   struct{ err error }
)

var helpStyle = lipgloss.NewStyle().Faint(true)

// Model hosts the state and response renderers inside a bubbletea program.
// It owns no agent state: each inbound event replaces the borrowed snapshot.
type Model struct {
	cfg     render.Config
	watcher *stream.Watcher
	tracker *feedback.Tracker

	events <-chan *entity.StreamEvent

	snap     stream.Snapshot
	decision *entity.FeedbackRecord

	spin     spinner.Model
	input    textinput.Model
	entering bool

	err      error
	quitting bool
}

// NewModel builds the TUI model. events delivers decoded agent events;
// closing it ends the stream.
func NewModel(cfg render.Config, tracker *feedback.Tracker, events <-chan *entity.StreamEvent) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "feedback"
	input.CharLimit = 500

	return Model{
		cfg:     cfg,
		watcher: stream.NewWatcher(),
		tracker: tracker,
		events:  events,
		snap:    stream.Snapshot{Status: entity.StatusInProgress},
		spin:    spin,
		input:   input,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForEvent(m.events))
}

func waitForEvent(events <-chan *entity.StreamEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return errMsg{err: errno.ErrStreamClosed}
		}
		return eventMsg{event: event}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case eventMsg:
		m.snap = m.watcher.Apply(msg.event)
		m.refreshDecision()
		return m, waitForEvent(m.events)

	case errMsg:
		if errors.Is(msg.err, errno.ErrStreamClosed) {
			// Keep the final frame on screen; the user quits explicitly.
			return m, nil
		}
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.entering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entering {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitFeedback(entity.FeedbackFreeform, m.input.Value())
			m.entering = false
			m.input.Reset()
			return m, nil
		case tea.KeyEsc:
			m.entering = false
			m.input.Reset()
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "a":
		m.submitFeedback(entity.FeedbackApproved, "")
	case "r":
		m.submitFeedback(entity.FeedbackRejected, "")
	case "f":
		if m.feedbackOpen() {
			m.entering = true
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// feedbackOpen reports whether controls are currently offered.
func (m *Model) feedbackOpen() bool {
	return m.snap.Response != nil &&
		m.snap.Status.AcceptsFeedback() &&
		m.tracker != nil && m.tracker.Enabled() &&
		m.decision == nil
}

func (m *Model) submitFeedback(decision entity.FeedbackDecision, text string) {
	if !m.feedbackOpen() {
		return
	}
	ctx := context.Background()
	id := m.snap.Response.ID

	var err error
	switch decision {
	case entity.FeedbackApproved:
		err = m.tracker.Approve(ctx, id)
	case entity.FeedbackRejected:
		err = m.tracker.Reject(ctx, id)
	default:
		err = m.tracker.Submit(ctx, id, text)
	}
	if err != nil && !errors.Is(err, errno.ErrFeedbackGiven) {
		log.WithError(err).Warn("record feedback")
		m.err = err
		return
	}
	m.refreshDecision()
}

// refreshDecision reloads the recorded decision for the current response so
// completed feedback persists across unrelated state updates.
func (m *Model) refreshDecision() {
	m.decision = nil
	if m.snap.Response == nil {
		return
	}
	record, err := m.tracker.Decision(context.Background(), m.snap.Response.ID)
	if err != nil {
		log.WithError(err).Warn("load feedback decision")
		return
	}
	m.decision = record
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// The live spinner frame replaces the static skeleton; all other
	// sub-renderers keep their configured behavior.
	cfg := m.cfg
	frame := m.spin.View()
	cfg.Skeleton = func(theme render.Theme) string {
		return theme.Styles.Skeleton.Render(frame + theme.Labels.Loading)
	}

	var b strings.Builder
	b.WriteString(render.NewStateRenderer(cfg).Render(m.snap.State, m.snap.Status))
	b.WriteString("\n")

	if m.snap.Response != nil {
		b.WriteString("\n")
		fb := render.FeedbackView{
			Enabled: m.tracker != nil && m.tracker.Enabled(),
			Done:    m.decision,
		}
		b.WriteString(render.NewResponseRenderer(cfg).Render(m.snap.Response, m.snap.Status, fb))
		b.WriteString("\n")
	}

	if m.entering {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}

	if m.snap.Err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("agent error: " + m.snap.Err))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error()))
	}

	b.WriteString("\n")
	if m.feedbackOpen() {
		b.WriteString(helpStyle.Render("a approve · r reject · f free text · q quit"))
	} else {
		b.WriteString(helpStyle.Render("q quit"))
	}
	b.WriteString("\n")
	return b.String()
}
