// Package sqlite provides the SQLite-backed conversion history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite
// implementation that requires no CGO, enabling easy
// cross-compilation.
//
// # Data Location
//
// By default, the database is stored at ~/.pdfwizard/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level
// locking provided by SQLite in WAL mode.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
	id           TEXT PRIMARY KEY,
	feature      TEXT NOT NULL,
	items        INTEGER NOT NULL,
	converted    INTEGER NOT NULL,
	skipped      INTEGER NOT NULL,
	output_bytes INTEGER NOT NULL,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversions_created_at
	ON conversions (created_at DESC);
`

// Store is the SQLite conversion history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.pdfwizard/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pdfwizard", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record stores one finished conversion.
func (s *Store) Record(ctx context.Context, rec domain.ConversionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, feature, items, converted, skipped, output_bytes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		string(rec.Feature),
		rec.Items,
		rec.Converted,
		rec.Skipped,
		rec.OutputBytes,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, feature, items, converted, skipped, output_bytes, created_at
		FROM conversions
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversion records: %w", err)
	}
	defer rows.Close()

	var records []domain.ConversionRecord
	for rows.Next() {
		var rec domain.ConversionRecord
		var feature, createdAt string
		if err := rows.Scan(&rec.ID, &feature, &rec.Items, &rec.Converted, &rec.Skipped, &rec.OutputBytes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning conversion record: %w", err)
		}
		rec.Feature = domain.Feature(feature)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversion records: %w", err)
	}
	return records, nil
}
