package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/polkiloo/cars/internal/domain/repository"
)

const driverName = "sqlite3"

// Storage is a repository facade backed by an SQLite database file.
type Storage struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database described by dsn and prepares the schema.
// dsn is anything the driver accepts: a path, a file: URI or ":memory:".
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	db, err := sql.Open(driverName, withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// one long-lived connection: sqlite serialises writers anyway and :memory: lives per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{db: db, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite storage ready", slog.String("dsn", dsn))
	return storage, nil
}

// connectionPragmas are applied by the driver to every connection it opens.
var connectionPragmas = []string{"busy_timeout(5000)", "foreign_keys(1)"}

// withPragmas turns dsn into a file: URI carrying connectionPragmas as _pragma parameters.
func withPragmas(dsn string) string {
	if dsn == ":memory:" {
		dsn = "file::memory:"
	} else if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	var b strings.Builder
	b.WriteString(dsn)
	for _, p := range connectionPragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(url.QueryEscape(p))
		sep = "&"
	}
	return b.String()
}

// Close releases the database handle.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Users returns the user repository bound to this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS auto_user (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            login TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// WithinTransaction executes fn inside a transaction. The transaction is
// committed when fn succeeds and rolled back on error or panic.
// fn must use tx only: the pool holds a single connection.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			s.rollback(tx)
			panic(p)
		}
		if err != nil {
			s.rollback(tx)
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()

	err = fn(tx)
	return err
}

func (s *Storage) rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) && s.logger != nil {
		s.logger.Warn("rollback failed", slog.String("error", err.Error()))
	}
}

// HealthCheck verifies the database handle is usable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, sqlite3.CONSTRAINT_UNIQUE)
}
