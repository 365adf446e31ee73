package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
	"github.com/kiosk404/scryer/internal/scryer/store/inmemory"
)

func TestTrackerApproveFiresCallbackOnce(t *testing.T) {
	var calls []string
	tracker := NewTracker(inmemory.NewFeedbackStore(), func(responseID, input string) {
		calls = append(calls, responseID+":"+input)
	})

	ctx := context.Background()
	require.NoError(t, tracker.Approve(ctx, "r1"))

	// Second attempts fail and do not re-fire the callback.
	assert.ErrorIs(t, tracker.Approve(ctx, "r1"), errno.ErrFeedbackGiven)
	assert.ErrorIs(t, tracker.Reject(ctx, "r1"), errno.ErrFeedbackGiven)
	assert.ErrorIs(t, tracker.Submit(ctx, "r1", "more"), errno.ErrFeedbackGiven)

	assert.Equal(t, []string{"r1:" + entity.ApproveToken}, calls)
}

func TestTrackerRejectToken(t *testing.T) {
	var got string
	tracker := NewTracker(inmemory.NewFeedbackStore(), func(responseID, input string) {
		got = input
	})

	require.NoError(t, tracker.Reject(context.Background(), "r1"))
	assert.Equal(t, entity.RejectToken, got)
}

func TestTrackerFreeformPassesLiteralText(t *testing.T) {
	var got string
	tracker := NewTracker(inmemory.NewFeedbackStore(), func(responseID, input string) {
		got = input
	})

	require.NoError(t, tracker.Submit(context.Background(), "r1", "  needs a test\n"))
	assert.Equal(t, "  needs a test\n", got, "free text must pass through verbatim")
}

func TestTrackerDecision(t *testing.T) {
	tracker := NewTracker(inmemory.NewFeedbackStore(), nil)
	ctx := context.Background()

	record, err := tracker.Decision(ctx, "r1")
	require.NoError(t, err)
	assert.Nil(t, record, "no decision before feedback")

	require.NoError(t, tracker.Approve(ctx, "r1"))

	record, err = tracker.Decision(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.FeedbackApproved, record.Decision)
	assert.Equal(t, "r1", record.ResponseID)

	// Decisions are per response: a different response is still open.
	other, err := tracker.Decision(ctx, "r2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestTrackerEmptyResponseID(t *testing.T) {
	tracker := NewTracker(inmemory.NewFeedbackStore(), nil)
	assert.ErrorIs(t, tracker.Approve(context.Background(), ""), errno.ErrEmptyResponseID)
}

func TestTrackerNilCallbackStillRecords(t *testing.T) {
	tracker := NewTracker(inmemory.NewFeedbackStore(), nil)
	ctx := context.Background()

	assert.False(t, tracker.Enabled())
	require.NoError(t, tracker.Reject(ctx, "r1"))

	record, err := tracker.Decision(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.FeedbackRejected, record.Decision)
}
