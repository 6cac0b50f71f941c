// Package store persists progress records. The engine never touches it;
// callers load a record, run an engine operation and save the result.
// Saves are last-write-wins, which matches the single-learner,
// single-session deployment the engine assumes.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotEnrolled is returned by Load when no record exists for the
// (learner, course) pair.
var ErrNotEnrolled = errors.New("no progress record: learner is not enrolled")

// ProgressRepo is the persistence port for progress records.
type ProgressRepo interface {
	Load(ctx context.Context, learnerID, courseID string) (*progress.Record, error)
	Save(ctx context.Context, rec *progress.Record) error
	Delete(ctx context.Context, learnerID, courseID string) error
	List(ctx context.Context, learnerID string) ([]*progress.Record, error)
}

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ProgressRepo returns a ProgressRepo backed by this store.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{db: s.db}
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS progress_records (
		learner_id TEXT NOT NULL,
		course_id  TEXT NOT NULL,
		record     TEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (learner_id, course_id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LMS5_DB environment variable
// 2. $XDG_DATA_HOME/lms5/lms5.db
// 3. ~/.local/share/lms5/lms5.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LMS5_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lms5", "lms5.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
