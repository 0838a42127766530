//go:build sqlite

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/clipr/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultFilename is the history file name used when none is configured.
const DefaultFilename = "history.db"

const schema = `
CREATE TABLE IF NOT EXISTS clipboard_items (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	id        TEXT NOT NULL UNIQUE,
	text      TEXT NOT NULL,
	category  TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	chars     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_category ON clipboard_items(category);
CREATE INDEX IF NOT EXISTS idx_timestamp ON clipboard_items(timestamp);
`

// SQLite stores history entries in an SQLite database.
type SQLite struct {
	db         *sql.DB
	maxEntries int
}

// Open creates or opens an SQLite-backed history at the given path.
func Open(path string, opts Options) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	// WAL mode and a busy timeout; a single connection because SQLite
	// does not handle multiple writers well.
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db, maxEntries: opts.MaxEntries}, nil
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) Load() ([]model.ClipEntry, error) {
	return s.query(`SELECT id, text, category, timestamp, chars FROM clipboard_items ORDER BY seq`)
}

func (s *SQLite) Append(entry model.ClipEntry) (bool, error) {
	// Adjacent-duplicate rule: same text as the newest entry is a no-op.
	var newest string

	err := s.db.QueryRow(`SELECT text FROM clipboard_items ORDER BY seq DESC LIMIT 1`).Scan(&newest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	if err == nil && newest == entry.Text {
		return false, nil
	}

	_, err = s.db.Exec(
		`INSERT INTO clipboard_items (id, text, category, timestamp, chars) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Text, string(entry.Category), entry.Timestamp.Format(time.RFC3339Nano), entry.Chars,
	)
	if err != nil {
		return false, err
	}

	if s.maxEntries > 0 {
		_, err = s.db.Exec(
			`DELETE FROM clipboard_items WHERE seq NOT IN (SELECT seq FROM clipboard_items ORDER BY seq DESC LIMIT ?)`,
			s.maxEntries,
		)
	}

	return true, err
}

func (s *SQLite) Remove(id string) error {
	res, err := s.db.Exec(`DELETE FROM clipboard_items WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLite) Clear() error {
	_, err := s.db.Exec(`DELETE FROM clipboard_items`)
	return err
}

func (s *SQLite) Search(term string) ([]model.ClipEntry, error) {
	return s.query(
		`SELECT id, text, category, timestamp, chars FROM clipboard_items WHERE lower(text) LIKE '%' || lower(?) || '%' ORDER BY seq`,
		term,
	)
}

func (s *SQLite) FilterByCategory(category model.Category) ([]model.ClipEntry, error) {
	return s.query(
		`SELECT id, text, category, timestamp, chars FROM clipboard_items WHERE category = ? ORDER BY seq`,
		string(category),
	)
}

func (s *SQLite) Count() (int, error) {
	var count int

	err := s.db.QueryRow(`SELECT COUNT(*) FROM clipboard_items`).Scan(&count)

	return count, err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) query(stmt string, args ...any) ([]model.ClipEntry, error) {
	rows, err := s.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.ClipEntry

	for rows.Next() {
		var (
			entry    model.ClipEntry
			category string
			stamp    string
		)

		if err := rows.Scan(&entry.ID, &entry.Text, &category, &stamp, &entry.Chars); err != nil {
			return nil, err
		}

		entry.Category = model.Category(category)

		ts, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}

		entry.Timestamp = ts

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
