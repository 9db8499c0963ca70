// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logbook persists parsed distance expressions in a SQLite
// database with a full-text index over the original text, and answers
// listing, totalling, and export queries over them.
package logbook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chronic-distance/pkg/distance"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

const (
	dbFile            = "logbook.db"
	defaultMaxResults = 20

	// timeLayout is fixed-width so stored timestamps sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

var (
	// ErrUnparseable is returned by Add when the text holds no distance.
	ErrUnparseable = errors.New("no distance found")

	// ErrNotFound is returned when an entry ID does not exist.
	ErrNotFound = errors.New("entry not found")
)

// Store manages the logbook SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	engine     *distance.Engine
}

// NewStore opens or creates the logbook database at cfg.Dir/logbook.db and
// creates the schema if it does not exist. A nil engine parses with the
// default distance engine.
func NewStore(cfg types.LogbookConfig, engine *distance.Engine) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "logbook"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating logbook directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if engine == nil {
		engine = distance.NewEngine(nil)
	}

	s := &Store{
		db:         db,
		dir:        dir,
		maxResults: maxResults,
		engine:     engine,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and export files.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			normalized TEXT NOT NULL,
			millimeters REAL NOT NULL,
			integral INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_recorded_at ON entries(recorded_at)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts4(text)`,
		`CREATE TRIGGER IF NOT EXISTS entries_ai AFTER INSERT ON entries BEGIN
			INSERT INTO entries_fts(docid, text) VALUES (new.id, new.text);
		END`,
		`CREATE TRIGGER IF NOT EXISTS entries_ad AFTER DELETE ON entries BEGIN
			DELETE FROM entries_fts WHERE docid = old.id;
		END`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add parses text and records it. A zero RecordedAt time means now.
// Text without a distance is rejected with ErrUnparseable.
func (s *Store) Add(ctx context.Context, text string, at time.Time) (types.LogEntry, error) {
	total, ok := s.engine.Parse(text, types.ParseOptions{})
	if !ok {
		return types.LogEntry{}, fmt.Errorf("%w in %q", ErrUnparseable, text)
	}
	if at.IsZero() {
		at = time.Now()
	}

	entry := types.LogEntry{
		Text:        text,
		Normalized:  s.engine.Normalize(text),
		Millimeters: total,
		RecordedAt:  at.UTC(),
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (text, normalized, millimeters, integral, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Text, entry.Normalized, total.Value, total.Integral,
		entry.RecordedAt.Format(timeLayout),
	)
	if err != nil {
		return types.LogEntry{}, fmt.Errorf("inserting entry: %w", err)
	}
	entry.ID, err = res.LastInsertId()
	if err != nil {
		return types.LogEntry{}, fmt.Errorf("reading entry id: %w", err)
	}
	return entry, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (types.LogEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, text, normalized, millimeters, integral, recorded_at
		 FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.LogEntry{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, err
}

// Remove deletes the entry with the given ID.
func (s *Store) Remove(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (types.LogEntry, error) {
	var (
		e          types.LogEntry
		integral   bool
		recordedAt string
	)
	if err := row.Scan(&e.ID, &e.Text, &e.Normalized, &e.Millimeters.Value, &integral, &recordedAt); err != nil {
		return types.LogEntry{}, err
	}
	e.Millimeters.Integral = integral

	t, err := time.Parse(timeLayout, recordedAt)
	if err != nil {
		return types.LogEntry{}, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
	}
	e.RecordedAt = t
	return e, nil
}
