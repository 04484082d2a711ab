package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/kairos/internal/adapters/handler/http"
	"github.com/vncsmyrnk/kairos/internal/adapters/linkgen"
	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
	"github.com/vncsmyrnk/kairos/internal/adapters/repository/storage"
	"github.com/vncsmyrnk/kairos/internal/config"
	"github.com/vncsmyrnk/kairos/internal/core/services"
)

// @title        Kairos API
// @version      1.0
// @description  Propose an event with candidate time slots, share its link and collect votes.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := storage.Open(connectCtx, cfg.DBDriver, cfg.DatabaseURL, repository.PoolOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	cancel()
	if err != nil {
		logger.Error("failed to open storage", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			logger.Error("failed to migrate storage", "error", err)
			os.Exit(1)
		}
		logger.Info("storage schema ready", "driver", cfg.DBDriver)
	}

	messages, err := http.NewMessages(cfg.DefaultLocale)
	if err != nil {
		logger.Error("failed to load messages", "error", err)
		os.Exit(1)
	}

	eventService := services.NewEventService(store.Events, linkgen.NewNanoID(cfg.LinkLength))
	voteService := services.NewVoteService(store.Events, store.Votes)

	handler := http.NewHandler(
		http.NewEventHandler(eventService, messages, logger),
		http.NewVoteHandler(voteService, messages, logger),
		messages,
		http.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
			MaxBodyBytes:   cfg.MaxBodyBytes,
		},
	)
	server := &stdhttp.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
