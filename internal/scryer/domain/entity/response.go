package entity

import (
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

// ResponseStatus is the tri-state status of an agent response.
//
// Transitions are driven entirely by the agent process; the rendering layer
// never changes it.
type ResponseStatus string

const (
	// StatusInProgress means the agent is still producing the response.
	StatusInProgress ResponseStatus = "inProgress"

	// StatusComplete means the response is final.
	StatusComplete ResponseStatus = "complete"

	// StatusExecuting means the agent is executing and may accept feedback.
	StatusExecuting ResponseStatus = "executing"
)

// Valid reports whether s is one of the three defined values.
func (s ResponseStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusComplete, StatusExecuting:
		return true
	}
	return false
}

// AcceptsFeedback reports whether feedback controls may be offered for a
// response in this status.
func (s ResponseStatus) AcceptsFeedback() bool {
	return s == StatusInProgress || s == StatusExecuting
}

// IsTerminal reports whether the status is final.
func (s ResponseStatus) IsTerminal() bool {
	return s == StatusComplete
}

// Response is a candidate or final agent output, possibly requiring
// feedback. Immutable once created; Content is the only field guaranteed
// renderable.
type Response struct {
	// ID is the unique response identifier.
	ID string `json:"id"`

	// Content is the textual output.
	Content string `json:"content"`

	// Metadata is an optional opaque mapping supplied by the producer.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Validate reports whether the response carries its required identifier.
func (r *Response) Validate() error {
	if r == nil || r.ID == "" {
		return errno.ErrEmptyResponseID
	}
	return nil
}
