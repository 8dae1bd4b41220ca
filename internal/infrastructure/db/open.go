// Package db selects and connects the configured ports.Store backend.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fintrack/personal-finance/internal/core/ports"
	"github.com/fintrack/personal-finance/internal/infrastructure/config"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/file"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/memory"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/mongo"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/postgres"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/redis"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/sqlite"
)

// Result is an opened backend. Cleanup releases its connections and is never nil.
type Result struct {
	Store   ports.Store
	Cleanup func(ctx context.Context) error
}

func noCleanup(context.Context) error { return nil }

// Open connects the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig, logger zerolog.Logger) (*Result, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Warn().Msg("using in-memory store; data is lost on exit")
		return &Result{Store: memory.NewStore(), Cleanup: noCleanup}, nil

	case config.BackendFile:
		s, err := file.Open(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		logger.Info().Str("path", cfg.FilePath).Msg("initialized file store")
		return &Result{Store: s, Cleanup: noCleanup}, nil

	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		logger.Info().Str("db_path", cfg.SQLitePath).Msg("initialized sqlite store")
		return &Result{Store: s, Cleanup: func(context.Context) error { return s.Close() }}, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}
		s, err := postgres.NewStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info().Msg("initialized postgres store")
		return &Result{Store: s, Cleanup: func(context.Context) error { pool.Close(); return nil }}, nil

	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("initialized redis store")
		return &Result{
			Store:   redis.NewStore(client, cfg.Redis.Prefix),
			Cleanup: func(context.Context) error { return client.Close() },
		}, nil

	case config.BackendMongo:
		client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		logger.Info().Str("database", cfg.Mongo.Database).Str("collection", cfg.Mongo.Collection).Msg("initialized mongo store")
		return &Result{
			Store:   mongo.NewStore(database, cfg.Mongo.Collection),
			Cleanup: client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Backend)
	}
}
