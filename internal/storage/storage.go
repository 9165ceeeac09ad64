package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/polkiloo/cars/internal/domain/repository"
	"github.com/polkiloo/cars/internal/storage/postgres"
	"github.com/polkiloo/cars/internal/storage/sqlite"
)

// Backend is a storage engine able to serve the domain repositories.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close() error
}

var (
	_ Backend = (*postgres.Storage)(nil)
	_ Backend = (*sqlite.Storage)(nil)
)

// Open selects the backend by DSN scheme:
//
//	postgres://, postgresql://  PostgreSQL
//	sqlite:<path>, sqlite://<path>, file:<path>, :memory:  SQLite
func Open(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		st, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	case dsn == ":memory:", strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, "sqlite:"):
		path, err := sqlitePath(dsn)
		if err != nil {
			return nil, err
		}
		st, err := sqlite.Open(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported database uri %q", redact(dsn))
	}
}

func sqlitePath(dsn string) (string, error) {
	path := dsn
	if rest, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		path = rest
	} else if rest, ok := strings.CutPrefix(dsn, "sqlite:"); ok {
		path = rest
	}
	if path == "" {
		return "", fmt.Errorf("sqlite database path must be provided")
	}
	return path, nil
}

// redact drops everything after the scheme so credentials never reach logs.
func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if i := strings.Index(dsn, ":"); i >= 0 {
		return dsn[:i+1] + "..."
	}
	return "..."
}
