package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

func TestFeedbackStoreRoundTrip(t *testing.T) {
	store := NewFeedbackStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "r1")
	assert.ErrorIs(t, err, errno.ErrFeedbackNotFound)

	require.NoError(t, store.Put(ctx, &entity.FeedbackRecord{ResponseID: "r1", Decision: entity.FeedbackFreeform, Text: "hm"}))

	got, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "hm", got.Text)

	// Returned records are copies; mutating one must not leak back.
	got.Text = "changed"
	again, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "hm", again.Text)
}

func TestFeedbackStoreListSorted(t *testing.T) {
	store := NewFeedbackStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &entity.FeedbackRecord{ResponseID: "b"}))
	require.NoError(t, store.Put(ctx, &entity.FeedbackRecord{ResponseID: "a"}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ResponseID)
	assert.Equal(t, "b", records[1].ResponseID)
}
