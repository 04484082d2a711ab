package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
	"github.com/vncsmyrnk/kairos/internal/adapters/repository/storage"
	"github.com/vncsmyrnk/kairos/internal/config"
)

func main() {
	app := &cli.App{
		Name:  "migrations",
		Usage: "Manage the Kairos tables in the configured database.",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Create the events and votes tables if they do not exist.",
				Flags:  storageFlags(),
				Action: withStorage("migrations applied", (*storage.Storage).Migrate),
			},
			{
				Name:   "down",
				Usage:  "Drop the events and votes tables and everything in them.",
				Flags:  storageFlags(),
				Action: withStorage("migrations rolled back", (*storage.Storage).Rollback),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "driver",
			Usage: "storage driver (postgres or mysql); defaults to DB_DRIVER",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Usage:   "connection string; defaults to DATABASE_URL or the POSTGRES_* variables",
			EnvVars: []string{"MIGRATIONS_DATABASE_URL"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: time.Minute,
			Usage: "upper bound for connecting and running the scripts",
		},
	}
}

func withStorage(done string, run func(*storage.Storage, context.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.LoadWithOverrides(map[string]string{
			"DB_DRIVER":    c.String("driver"),
			"DATABASE_URL": c.String("database-url"),
		})
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := config.NewLogger(cfg)

		ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
		defer cancel()

		store, err := storage.Open(ctx, cfg.DBDriver, cfg.DatabaseURL, repository.PoolOptions{MaxOpenConns: 1})
		if err != nil {
			return err
		}
		defer store.Close()

		if err := run(store, ctx); err != nil {
			return err
		}

		logger.Info(done, "driver", cfg.DBDriver)
		return nil
	}
}
