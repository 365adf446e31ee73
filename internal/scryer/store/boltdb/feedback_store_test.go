package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

func openTestStore(t *testing.T) *FeedbackStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewFeedbackStore(db)
}

func TestFeedbackStorePutGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	record := &entity.FeedbackRecord{
		ResponseID: "r1",
		Decision:   entity.FeedbackApproved,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, record.ResponseID, got.ResponseID)
	assert.Equal(t, record.Decision, got.Decision)
	assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
}

func TestFeedbackStoreGetMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, errno.ErrFeedbackNotFound)
}

func TestFeedbackStoreList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &entity.FeedbackRecord{ResponseID: "r2", Decision: entity.FeedbackRejected}))
	require.NoError(t, store.Put(ctx, &entity.FeedbackRecord{ResponseID: "r1", Decision: entity.FeedbackApproved}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Bolt iterates keys in byte order.
	assert.Equal(t, "r1", records[0].ResponseID)
	assert.Equal(t, "r2", records[1].ResponseID)
}

func TestFeedbackStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "feedback.db")

	db, err := Open(path)
	require.NoError(t, err)
	store := NewFeedbackStore(db)
	require.NoError(t, store.Put(ctx, &entity.FeedbackRecord{ResponseID: "r1", Decision: entity.FeedbackApproved}))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewFeedbackStore(db).Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackApproved, got.Decision)
}
