package cmd

import (
	"context"
	"fmt"

	"timetable-sync/core/config"
	"timetable-sync/core/database"
	"timetable-sync/core/fetch"
	"timetable-sync/core/logger"
	"timetable-sync/core/storage"
	"timetable-sync/feature/schedule/snapshot"

	"go.uber.org/zap"
)

// bootstrap loads configuration and builds the logger every command needs.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logg, nil
}

// buildStore selects the snapshot backend from configuration.
func buildStore(ctx context.Context, cfg *config.Config, logg *zap.Logger) (snapshot.Store, error) {
	switch cfg.Cache.Backend {
	case "file":
		return snapshot.NewFileStore(cfg.Cache.Dir, logg), nil

	case "database":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect snapshot database: %w", err)
		}
		return snapshot.NewDBStore(db, logg)

	case "s3":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return snapshot.NewObjectStore(ctx, client, cfg.Storage.Bucket, cfg.Cache.Prefix, logg)

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// buildFetchClient creates the HTTP client for the timetable site.
func buildFetchClient(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(cfg.Source)
}
