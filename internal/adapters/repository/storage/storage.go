// Package storage opens the configured SQL backend and hands out its
// repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
	"github.com/vncsmyrnk/kairos/internal/adapters/repository/mysql"
	"github.com/vncsmyrnk/kairos/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Storage struct {
	DB     *sql.DB
	Events ports.EventRepository
	Votes  ports.VoteRepository

	migrate  func(ctx context.Context, db *sql.DB) error
	rollback func(ctx context.Context, db *sql.DB) error
}

// Open connects to driver at dsn. The caller owns the returned Storage and
// must Close it.
func Open(ctx context.Context, driver, dsn string, pool repository.PoolOptions) (*Storage, error) {
	switch driver {
	case DriverPostgres:
		db, err := postgres.Open(ctx, dsn, pool)
		if err != nil {
			return nil, err
		}
		return &Storage{
			DB:       db,
			Events:   postgres.NewEventRepository(db),
			Votes:    postgres.NewVoteRepository(db),
			migrate:  postgres.Migrate,
			rollback: postgres.Rollback,
		}, nil
	case DriverMySQL:
		db, err := mysql.Open(ctx, dsn, pool)
		if err != nil {
			return nil, err
		}
		return &Storage{
			DB:       db,
			Events:   mysql.NewEventRepository(db),
			Votes:    mysql.NewVoteRepository(db),
			migrate:  mysql.Migrate,
			rollback: mysql.Rollback,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}

// Migrate creates the events and votes tables if they do not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	return s.migrate(ctx, s.DB)
}

// Rollback drops the events and votes tables along with their data.
func (s *Storage) Rollback(ctx context.Context) error {
	return s.rollback(ctx, s.DB)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
