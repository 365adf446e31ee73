package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/domain/repo"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

// Callback receives the user's input exactly once per response: the fixed
// approve/reject token, or the literal free text. responseID names the
// response instance the input is tied to.
type Callback func(responseID, input string)

// Tracker guards the one-shot feedback transition per response ID:
// awaiting-feedback → (approve|reject|freeform) → feedback-shown.
//
// A second submission for the same response returns errno.ErrFeedbackGiven
// and does not re-fire the callback. Decisions persist through the store, so
// completion survives unrelated AgentState updates and process restarts.
type Tracker struct {
	store repo.FeedbackStore
	cb    Callback
}

// NewTracker builds a tracker. cb may be nil, in which case decisions are
// recorded but nothing is emitted upstream.
func NewTracker(store repo.FeedbackStore, cb Callback) *Tracker {
	return &Tracker{store: store, cb: cb}
}

// Enabled reports whether a feedback callback was supplied.
func (t *Tracker) Enabled() bool {
	return t.cb != nil
}

// Approve records an approval for the response.
func (t *Tracker) Approve(ctx context.Context, responseID string) error {
	return t.record(ctx, responseID, entity.FeedbackApproved, "")
}

// Reject records a rejection for the response.
func (t *Tracker) Reject(ctx context.Context, responseID string) error {
	return t.record(ctx, responseID, entity.FeedbackRejected, "")
}

// Submit records free-text feedback for the response. The text passes
// through to the callback verbatim.
func (t *Tracker) Submit(ctx context.Context, responseID, text string) error {
	return t.record(ctx, responseID, entity.FeedbackFreeform, text)
}

// Decision returns the recorded decision for a response, or nil when the
// response is still awaiting feedback.
func (t *Tracker) Decision(ctx context.Context, responseID string) (*entity.FeedbackRecord, error) {
	record, err := t.store.Get(ctx, responseID)
	if errors.Is(err, errno.ErrFeedbackNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load feedback for %q: %w", responseID, err)
	}
	return record, nil
}

func (t *Tracker) record(ctx context.Context, responseID string, decision entity.FeedbackDecision, text string) error {
	if responseID == "" {
		return errno.ErrEmptyResponseID
	}

	existing, err := t.Decision(ctx, responseID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errno.ErrFeedbackGiven
	}

	record := &entity.FeedbackRecord{
		ResponseID: responseID,
		Decision:   decision,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	if err := t.store.Put(ctx, record); err != nil {
		return fmt.Errorf("store feedback for %q: %w", responseID, err)
	}

	if t.cb != nil {
		t.cb(responseID, record.Input())
	}
	return nil
}
