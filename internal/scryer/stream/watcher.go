package stream

import (
	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

// Snapshot is the latest view the rendering layer borrows for one render
// pass: the current state, the current response (if any) and the status.
type Snapshot struct {
	State    *entity.AgentState
	Response *entity.Response
	Status   entity.ResponseStatus
	Err      string
	Done     bool
}

// Watcher folds agent events into the latest snapshot. Each state event
// replaces the previous snapshot wholesale; nothing is diffed.
type Watcher struct {
	current Snapshot
}

// NewWatcher starts with an empty in-progress snapshot.
func NewWatcher() *Watcher {
	return &Watcher{current: Snapshot{Status: entity.StatusInProgress}}
}

// Apply folds one event and returns the updated snapshot.
func (w *Watcher) Apply(event *entity.StreamEvent) Snapshot {
	if event == nil {
		return w.current
	}

	switch event.Type {
	case entity.EventState:
		w.current.State = event.State
	case entity.EventResponse:
		w.current.Response = event.Response
	case entity.EventStatus:
		// handled below, status rides on every event type
	case entity.EventError:
		w.current.Err = event.Error
	case entity.EventDone:
		w.current.Done = true
	}

	if event.Status != nil && event.Status.Valid() {
		w.current.Status = *event.Status
	}
	return w.current
}

// Current returns the latest snapshot without applying anything.
func (w *Watcher) Current() Snapshot {
	return w.current
}
