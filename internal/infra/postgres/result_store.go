package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"aurora-journal-service/internal/domain"
)

// ResultStore persists completed assessment results as JSONB rows.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) SaveResult(ctx context.Context, result domain.AssessmentResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessment_results (id, user_id, completed_at, data) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), result.UserID, result.CompletedAt, data)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}
