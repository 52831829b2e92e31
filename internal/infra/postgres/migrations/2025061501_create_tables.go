package migrations

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS journal_entries (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    data       JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS journal_entries_user_created
    ON journal_entries (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS assessment_results (
    id           TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL,
    data         JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS assessment_results_user
    ON assessment_results (user_id);
`

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, createTablesSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS assessment_results; DROP TABLE IF EXISTS journal_entries`)
			return err
		},
	)
}
