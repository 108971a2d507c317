package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Run records one mutation of the name database. RunID is a UUID that
// identifies the run across logs and history output.
type Run struct {
	ID     int64
	RunID  string
	RunAt  time.Time
	Source string
	Before int
	After  int
	Added  int
}

// Store persists expansion runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a run and returns it with the assigned row id and run id.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.RunAt.IsZero() {
		run.RunAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, run_at, source, names_before, names_after, names_added)
         VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.RunAt.UTC().Format(time.RFC3339Nano),
		run.Source,
		run.Before,
		run.After,
		run.Added,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("last insert id: %w", err)
	}
	run.ID = id
	return run, nil
}

// List returns recorded runs newest-first, up to limit. A limit of zero or
// less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, run_id, run_at, source, names_before, names_after, names_added
              FROM runs ORDER BY run_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var stamp string
		if err := rows.Scan(&run.ID, &run.RunID, &stamp, &run.Source, &run.Before, &run.After, &run.Added); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", stamp, err)
		}
		run.RunAt = parsed
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}
