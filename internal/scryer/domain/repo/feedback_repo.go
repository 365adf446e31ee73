package repo

import (
	"context"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

// FeedbackStore persists feedback decisions keyed by response ID.
//
// Get returns errno.ErrFeedbackNotFound when no decision exists yet.
type FeedbackStore interface {
	// Put stores a decision. Overwriting an existing decision is the
	// caller's error to guard against, not the store's.
	Put(ctx context.Context, record *entity.FeedbackRecord) error

	// Get returns the decision for a response, if any.
	Get(ctx context.Context, responseID string) (*entity.FeedbackRecord, error)

	// List returns all recorded decisions, ordered by response ID.
	List(ctx context.Context) ([]*entity.FeedbackRecord, error)
}
