package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "gig_venues_backend/internal/http"
	"gig_venues_backend/internal/http/router"
	"gig_venues_backend/internal/media"
	"gig_venues_backend/internal/media/storage"
	"gig_venues_backend/internal/users"
	"gig_venues_backend/internal/venues"
	"gig_venues_backend/migrations"
	"gig_venues_backend/platform/config"
	"gig_venues_backend/platform/db"
	"gig_venues_backend/platform/logger"
	"gig_venues_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	if err := os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
		log.Error("failed to create media directory", "error", err, "dir", cfg.MediaDir)
		panic("failed to create media directory: " + err.Error())
	}

	// Object store for picture backups
	store, err := storage.New(cfg)
	if err != nil {
		log.Error("failed to initialize storage client", "error", err)
		panic("failed to initialize storage client: " + err.Error())
	}
	if err := withRetry(ctx, log, "ensure backup bucket", 5, 2*time.Second, func() error {
		return store.EnsureBucket(ctx)
	}); err != nil {
		log.Error("failed to ensure backup bucket exists", "error", err, "bucket", cfg.StorageBucket)
		panic("failed to ensure backup bucket exists: " + err.Error())
	}
	log.Info("storage client initialized", "bucket", cfg.StorageBucket)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Picture pipeline: resize first, then back up to the object store
	pipeline := media.NewPipeline(log,
		media.NewResizeStage(cfg.MediaDir),
		media.NewBackupStage(store, cfg.MediaDir, log),
	)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	usersModule := users.NewModule(pool, cfg, val, log)
	venuesModule := venues.NewModule(pool, cfg, val, log, pipeline)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			usersModule,
			venuesModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
