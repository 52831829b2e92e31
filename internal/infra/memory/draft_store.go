package memory

import (
	"context"
	"sync"

	"aurora-journal-service/internal/domain"
)

// DraftStore is an in-memory implementation of app.DraftSaver plus the
// read side used by the draft endpoints.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]domain.Draft)}
}

func (s *DraftStore) SaveDraft(_ context.Context, draft domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.UserID] = draft
	return nil
}

func (s *DraftStore) GetDraft(_ context.Context, userID string) (domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return domain.Draft{}, domain.ErrDraftNotFound
	}
	return draft, nil
}
