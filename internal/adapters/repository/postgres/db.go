package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Open connects to Postgres and verifies the connection before returning.
func Open(ctx context.Context, dsn string, opts repository.PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	opts.Apply(db)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}

// Migrate runs every embedded *.up.sql file in name order. The scripts are
// idempotent, so it is safe to call on each startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	return repository.ApplyMigrations(ctx, db, migrationFiles, "migrations")
}

// Rollback drops the tables created by Migrate, votes first.
func Rollback(ctx context.Context, db *sql.DB) error {
	return repository.RollbackMigrations(ctx, db, migrationFiles, "migrations")
}
