package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"aurora-journal-service/internal/domain"
)

// EntryStore persists journal entries as JSONB rows keyed by id, with
// user_id and created_at lifted out for querying.
type EntryStore struct {
	pool *pgxpool.Pool
}

func NewEntryStore(pool *pgxpool.Pool) *EntryStore {
	return &EntryStore{pool: pool}
}

func (s *EntryStore) CreateEntry(ctx context.Context, entry domain.JournalEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, created_at, data) VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.UserID, entry.CreatedAt, data)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (s *EntryStore) ListEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT data FROM journal_entries WHERE user_id=$1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		var entry domain.JournalEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("unmarshal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
