package entity

// StreamEventType identifies the type of an inbound agent event.
type StreamEventType string

const (
	// EventState carries a full AgentState snapshot replacing the previous one.
	EventState StreamEventType = "state"

	// EventResponse carries a candidate or final Response.
	EventResponse StreamEventType = "response"

	// EventStatus carries a standalone status change.
	EventStatus StreamEventType = "status"

	// EventError indicates the agent process reported an error.
	EventError StreamEventType = "error"

	// EventDone indicates the stream is ending.
	EventDone StreamEventType = "done"
)

// StreamEvent is the envelope the agent process emits on every progress
// tick. Exactly which fields are populated depends on Type.
type StreamEvent struct {
	// Type identifies which kind of event this is.
	Type StreamEventType `json:"type"`

	// State is the snapshot for EventState events.
	State *AgentState `json:"state,omitempty"`

	// Response is the output for EventResponse events.
	Response *Response `json:"response,omitempty"`

	// Status accompanies EventState/EventResponse/EventStatus events.
	// Absent means "unchanged".
	Status *ResponseStatus `json:"status,omitempty"`

	// Error is the message for EventError events.
	Error string `json:"error,omitempty"`
}
