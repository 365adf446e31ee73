package stream

import (
	"testing"

	"github.com/bytedance/gg/gptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

func TestWatcherFoldsEvents(t *testing.T) {
	watcher := NewWatcher()
	assert.Equal(t, entity.StatusInProgress, watcher.Current().Status)

	snap := watcher.Apply(&entity.StreamEvent{
		Type:   entity.EventState,
		Status: gptr.Of(entity.StatusInProgress),
		State: &entity.AgentState{
			Tasks: []entity.TaskStateItem{{ID: "t1", Name: "Plan"}},
		},
	})
	require.NotNil(t, snap.State)
	assert.Equal(t, 1, snap.State.Len())

	// Each state event replaces the snapshot wholesale.
	snap = watcher.Apply(&entity.StreamEvent{
		Type: entity.EventState,
		State: &entity.AgentState{
			ToolSteps: []entity.ToolStateItem{{ID: "s1", Tool: "search"}},
			Tasks:     []entity.TaskStateItem{{ID: "t1", Name: "Plan"}},
		},
	})
	assert.Equal(t, 2, snap.State.Len())
	assert.Equal(t, entity.StatusInProgress, snap.Status, "status unchanged when absent")

	snap = watcher.Apply(&entity.StreamEvent{
		Type:     entity.EventResponse,
		Status:   gptr.Of(entity.StatusExecuting),
		Response: &entity.Response{ID: "r1", Content: "Done"},
	})
	require.NotNil(t, snap.Response)
	assert.Equal(t, entity.StatusExecuting, snap.Status)
	assert.Equal(t, 2, snap.State.Len(), "response event keeps the state snapshot")

	snap = watcher.Apply(&entity.StreamEvent{Type: entity.EventDone, Status: gptr.Of(entity.StatusComplete)})
	assert.True(t, snap.Done)
	assert.Equal(t, entity.StatusComplete, snap.Status)
}

func TestWatcherIgnoresInvalidStatus(t *testing.T) {
	watcher := NewWatcher()
	bogus := entity.ResponseStatus("bogus")
	snap := watcher.Apply(&entity.StreamEvent{Type: entity.EventStatus, Status: &bogus})
	assert.Equal(t, entity.StatusInProgress, snap.Status)
}

func TestWatcherError(t *testing.T) {
	watcher := NewWatcher()
	snap := watcher.Apply(&entity.StreamEvent{Type: entity.EventError, Error: "model quota exceeded"})
	assert.Equal(t, "model quota exceeded", snap.Err)
}
