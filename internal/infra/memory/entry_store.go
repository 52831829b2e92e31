package memory

import (
	"context"
	"sort"
	"sync"

	"aurora-journal-service/internal/domain"
)

// EntryStore is an in-memory implementation of app.EntryRepository.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.JournalEntry
}

func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make(map[string][]domain.JournalEntry)}
}

func (s *EntryStore) CreateEntry(_ context.Context, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.UserID] = append(s.entries[entry.UserID], entry)
	return nil
}

// ListEntries returns copies, newest first.
func (s *EntryStore) ListEntries(_ context.Context, userID string) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.JournalEntry, len(s.entries[userID]))
	copy(out, s.entries[userID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
