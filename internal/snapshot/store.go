package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    collected_at DATETIME NOT NULL,
    seal_date DATETIME NOT NULL,
    task_count INTEGER NOT NULL DEFAULT 0,
    comment_count INTEGER NOT NULL DEFAULT 0,
    path TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_collected_at ON snapshots(collected_at);
`

// Meta is one catalog row: the identity and shape of a stored snapshot. The
// raw dump itself lives in the JSON file at Path.
type Meta struct {
	ID           string
	CollectedAt  time.Time
	SealDate     time.Time
	TaskCount    int
	CommentCount int
	Path         string
}

// Store is the sqlite-backed snapshot catalog. It makes dated dump files
// listable without opening each one.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the catalog database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot catalog: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging snapshot catalog: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing snapshot catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the catalog database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a catalog row for a stored snapshot.
func (s *Store) Record(ctx context.Context, meta Meta) error {
	query := `
		INSERT INTO snapshots (id, collected_at, seal_date, task_count, comment_count, path)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		meta.ID,
		meta.CollectedAt.UTC().Format(time.RFC3339),
		meta.SealDate.UTC().Format(time.RFC3339),
		meta.TaskCount,
		meta.CommentCount,
		meta.Path,
	)
	if err != nil {
		return fmt.Errorf("recording snapshot %s: %w", meta.ID, err)
	}
	return nil
}

// List returns all catalog rows, newest first.
func (s *Store) List(ctx context.Context) ([]Meta, error) {
	query := `
		SELECT id, collected_at, seal_date, task_count, comment_count, path
		FROM snapshots
		ORDER BY collected_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var m Meta
		var collectedAt, sealDate string
		if err := rows.Scan(&m.ID, &collectedAt, &sealDate, &m.TaskCount, &m.CommentCount, &m.Path); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		if m.CollectedAt, err = time.Parse(time.RFC3339, collectedAt); err != nil {
			return nil, fmt.Errorf("parsing collected_at for %s: %w", m.ID, err)
		}
		if m.SealDate, err = time.Parse(time.RFC3339, sealDate); err != nil {
			return nil, fmt.Errorf("parsing seal_date for %s: %w", m.ID, err)
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot rows: %w", err)
	}
	return metas, nil
}
