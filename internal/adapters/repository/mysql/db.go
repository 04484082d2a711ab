// Package mysql is the MySQL flavour of the storage adapter. It keeps the
// same tables and slot encoding as the postgres package.
package mysql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Open expects a go-sql-driver DSN, e.g. user:pass@tcp(host:3306)/kairos.
func Open(ctx context.Context, dsn string, opts repository.PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}
	opts.Apply(db)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}
	return db, nil
}

// Migrate creates the tables if missing. Each file holds a single statement
// since the driver rejects multi-statement Exec by default.
func Migrate(ctx context.Context, db *sql.DB) error {
	return repository.ApplyMigrations(ctx, db, migrationFiles, "migrations")
}

// Rollback drops the tables created by Migrate, one statement per file.
func Rollback(ctx context.Context, db *sql.DB) error {
	return repository.RollbackMigrations(ctx, db, migrationFiles, "migrations")
}
