package agentsim

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/gg/gptr"
	"github.com/google/uuid"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

// Script is a recorded sequence of agent events replayed over SSE.
type Script struct {
	// Name labels the script in logs.
	Name string `json:"name,omitempty"`

	// IntervalMs is the delay between events. Default 500ms.
	IntervalMs int `json:"interval_ms,omitempty"`

	// Events are emitted in order.
	Events []*entity.StreamEvent `json:"events"`
}

// Interval returns the tick interval with the default applied.
func (s *Script) Interval() time.Duration {
	if s.IntervalMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %q: %w", path, err)
	}
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script %q: %w", path, err)
	}
	if len(script.Events) == 0 {
		return nil, fmt.Errorf("script %q contains no events", path)
	}
	return &script, nil
}

// DefaultScript builds a small built-in demo run: a task, two tool steps,
// then a response that asks for feedback.
func DefaultScript() *Script {
	now := time.Now()
	responseID := uuid.NewString()

	return &Script{
		Name: "builtin-demo",
		Events: []*entity.StreamEvent{
			{
				Type:   entity.EventState,
				Status: gptr.Of(entity.StatusInProgress),
				State: &entity.AgentState{
					Tasks: []entity.TaskStateItem{
						{ID: uuid.NewString(), Timestamp: now, Name: "Plan", Description: "Outline the change"},
					},
				},
			},
			{
				Type:   entity.EventState,
				Status: gptr.Of(entity.StatusInProgress),
				State: &entity.AgentState{
					ToolSteps: []entity.ToolStateItem{
						{ID: uuid.NewString(), Timestamp: now.Add(time.Second), Tool: "search", Reasoning: "Look up prior art"},
					},
					Tasks: []entity.TaskStateItem{
						{ID: uuid.NewString(), Timestamp: now, Name: "Plan", Description: "Outline the change"},
					},
				},
			},
			{
				Type:   entity.EventState,
				Status: gptr.Of(entity.StatusInProgress),
				State: &entity.AgentState{
					ToolSteps: []entity.ToolStateItem{
						{ID: uuid.NewString(), Timestamp: now.Add(time.Second), Tool: "search", Reasoning: "Look up prior art"},
						{ID: uuid.NewString(), Timestamp: now.Add(2 * time.Second), Tool: "edit", Result: json.RawMessage(`"3 files changed"`)},
					},
					Tasks: []entity.TaskStateItem{
						{ID: uuid.NewString(), Timestamp: now, Name: "Plan", Description: "Outline the change"},
					},
				},
			},
			{
				Type:   entity.EventResponse,
				Status: gptr.Of(entity.StatusExecuting),
				Response: &entity.Response{
					ID:      responseID,
					Content: "## Summary\n\nApplied the change across 3 files. Approve to continue.",
				},
			},
			{
				Type:   entity.EventDone,
				Status: gptr.Of(entity.StatusComplete),
			},
		},
	}
}
