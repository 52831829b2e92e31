package memory

import (
	"context"
	"sync"

	"aurora-journal-service/internal/domain"
)

// ResultStore is an in-memory implementation of app.ResultRepository.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string][]domain.AssessmentResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[string][]domain.AssessmentResult)}
}

func (s *ResultStore) SaveResult(_ context.Context, result domain.AssessmentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.UserID] = append(s.results[result.UserID], result)
	return nil
}

// Results returns the stored results for a user, oldest first.
func (s *ResultStore) Results(userID string) []domain.AssessmentResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AssessmentResult, len(s.results[userID]))
	copy(out, s.results[userID])
	return out
}
