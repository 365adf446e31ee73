package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

// FeedbackStore is an in-memory feedback store, suitable for replay mode
// and tests.
type FeedbackStore struct {
	mu      sync.RWMutex
	records map[string]*entity.FeedbackRecord
}

// NewFeedbackStore creates an empty store.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{records: make(map[string]*entity.FeedbackRecord)}
}

func (s *FeedbackStore) Put(ctx context.Context, record *entity.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *record
	s.records[record.ResponseID] = &cp
	return nil
}

func (s *FeedbackStore) Get(ctx context.Context, responseID string) (*entity.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[responseID]
	if !ok {
		return nil, errno.ErrFeedbackNotFound
	}
	cp := *record
	return &cp, nil
}

func (s *FeedbackStore) List(ctx context.Context) ([]*entity.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.FeedbackRecord, 0, len(s.records))
	for _, record := range s.records {
		cp := *record
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResponseID < out[j].ResponseID })
	return out, nil
}
