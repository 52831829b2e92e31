package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aurora-journal-service/internal/domain"
)

// EntryRepository persists finished journal entries. Entries are
// write-once; there is no update or delete.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry domain.JournalEntry) error
	ListEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error)
}

// JournalService owns entry creation and the calendar-facing queries.
type JournalService struct {
	entries         EntryRepository
	completionWords int
	logger          *zap.Logger
	now             func() time.Time
	newID           func() string
}

func NewJournalService(entries EntryRepository, completionWords int, logger *zap.Logger) *JournalService {
	return NewJournalServiceWithClock(entries, completionWords, logger, time.Now, uuid.NewString)
}

// NewJournalServiceWithClock allows deterministic timestamps and IDs in tests.
func NewJournalServiceWithClock(entries EntryRepository, completionWords int, logger *zap.Logger, now func() time.Time, newID func() string) *JournalService {
	return &JournalService{
		entries:         entries,
		completionWords: completionWords,
		logger:          logger,
		now:             now,
		newID:           newID,
	}
}

// CreateEntry stores content as a new immutable entry. The completed flag
// records whether the entry reached the configured word target.
func (s *JournalService) CreateEntry(ctx context.Context, userID, content string) (domain.JournalEntry, error) {
	if userID == "" {
		return domain.JournalEntry{}, fmt.Errorf("user id required")
	}
	wc := CountWords(content)
	entry := domain.JournalEntry{
		ID:        s.newID(),
		UserID:    userID,
		Content:   content,
		WordCount: wc,
		Completed: wc >= s.completionWords,
		CreatedAt: s.now(),
	}
	if err := s.entries.CreateEntry(ctx, entry); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("create entry: %w", err)
	}
	s.logger.Info("journal entry saved",
		zap.String("userId", userID),
		zap.String("entryId", entry.ID),
		zap.Int("wordCount", wc))
	return entry, nil
}

// ListEntries returns the user's entries newest first.
func (s *JournalService) ListEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	return s.entries.ListEntries(ctx, userID)
}

// CountWords implements the editor's word-count semantics: trim, then
// split on whitespace. An empty or blank document counts zero words.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// Milestones returns the days on which a run of consecutive daily entries
// reaches a multiple of seven. Input order does not matter.
func Milestones(entries []domain.JournalEntry) []time.Time {
	sorted := make([]domain.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var milestones []time.Time
	streak := 0
	var lastDay time.Time
	for _, entry := range sorted {
		day := entry.CreatedAt.Truncate(24 * time.Hour)
		switch {
		case lastDay.IsZero():
			streak = 1
		case day.Equal(lastDay):
			continue
		case day.Sub(lastDay) == 24*time.Hour:
			streak++
			if streak%7 == 0 {
				milestones = append(milestones, day)
			}
		default:
			streak = 1
		}
		lastDay = day
	}
	return milestones
}
