package entity

import (
	"time"
)

// FeedbackDecision classifies what the user submitted for a response.
type FeedbackDecision string

const (
	FeedbackApproved FeedbackDecision = "approved"
	FeedbackRejected FeedbackDecision = "rejected"
	FeedbackFreeform FeedbackDecision = "freeform"
)

// Fixed tokens passed to the feedback callback for button decisions.
// Freeform feedback passes the user's literal text instead.
const (
	ApproveToken = "approve"
	RejectToken  = "reject"
)

// FeedbackRecord is the durable record of a feedback decision. Completion is
// keyed by response ID and survives unrelated AgentState updates.
type FeedbackRecord struct {
	// ResponseID identifies the response this decision belongs to.
	ResponseID string `json:"response_id"`

	// Decision classifies the submission.
	Decision FeedbackDecision `json:"decision"`

	// Text is the literal user input for freeform feedback.
	Text string `json:"text,omitempty"`

	// CreatedAt is when the decision was made.
	CreatedAt time.Time `json:"created_at"`
}

// Input returns what the feedback callback receives: the fixed token for
// button decisions, or the literal text for freeform feedback.
func (r *FeedbackRecord) Input() string {
	switch r.Decision {
	case FeedbackApproved:
		return ApproveToken
	case FeedbackRejected:
		return RejectToken
	default:
		return r.Text
	}
}
