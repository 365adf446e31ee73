package boltdb

import (
	"context"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

// FeedbackStore is a BoltDB-backed feedback store. Records are keyed by
// response ID so completion survives restarts.
type FeedbackStore struct {
	db *bolt.DB
}

// NewFeedbackStore creates a new FeedbackStore.
func NewFeedbackStore(db *DB) *FeedbackStore {
	return &FeedbackStore{db: db.Bolt()}
}

func (s *FeedbackStore) Put(ctx context.Context, record *entity.FeedbackRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFeedbackStore)
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal feedback: %w", err)
		}
		return b.Put([]byte(record.ResponseID), data)
	})
}

func (s *FeedbackStore) Get(ctx context.Context, responseID string) (*entity.FeedbackRecord, error) {
	var record entity.FeedbackRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFeedbackStore)
		data := b.Get([]byte(responseID))
		if data == nil {
			return errno.ErrFeedbackNotFound
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *FeedbackStore) List(ctx context.Context) ([]*entity.FeedbackRecord, error) {
	var records []*entity.FeedbackRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFeedbackStore)
		return b.ForEach(func(k, v []byte) error {
			var record entity.FeedbackRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal feedback %q: %w", k, err)
			}
			records = append(records, &record)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return records, nil
}
