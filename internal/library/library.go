// Package library caches per-file metadata (artist, title, length) in SQLite
// so a playlist directory can be enumerated without decoding every file.
package library

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const currentSchemaVersion = 1

// Entry is the cached metadata of one file. ModTime and Size identify the
// file version the metadata was read from.
type Entry struct {
	Path     string
	ModTime  time.Time
	Size     int64
	Artist   string
	Title    string
	Duration time.Duration
}

// Cache is a SQLite-backed metadata cache.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path. ":memory:"
// opens a private in-memory cache.
func Open(path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps an in-memory database shared between queries
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS tracks (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL,
			size INTEGER NOT NULL,
			artist TEXT,
			title TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}

// Lookup returns the cached entry for path when it was stored for the same
// modification time and size. A stale or missing entry reports false.
func (c *Cache) Lookup(path string, modTime time.Time, size int64) (Entry, bool, error) {
	var (
		artist, title sql.NullString
		durationMS    int64
	)
	err := c.db.QueryRow(`
		SELECT artist, title, duration_ms FROM tracks
		WHERE path = ? AND mtime = ? AND size = ?
	`, path, modTime.UnixNano(), size).Scan(&artist, &title, &durationMS)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("lookup %s: %w", path, err)
	}

	return Entry{
		Path:     path,
		ModTime:  modTime,
		Size:     size,
		Artist:   nullStringValue(artist),
		Title:    nullStringValue(title),
		Duration: time.Duration(durationMS) * time.Millisecond,
	}, true, nil
}

// Store inserts or replaces entries in a single transaction.
func (c *Cache) Store(entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().Unix()
	return withTx(c.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO tracks (path, mtime, size, artist, title, duration_ms, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				mtime = excluded.mtime,
				size = excluded.size,
				artist = excluded.artist,
				title = excluded.title,
				duration_ms = excluded.duration_ms,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range entries {
			_, err := stmt.Exec(e.Path, e.ModTime.UnixNano(), e.Size,
				nullString(e.Artist), nullString(e.Title), e.Duration.Milliseconds(), now)
			if err != nil {
				return fmt.Errorf("store %s: %w", e.Path, err)
			}
		}
		return nil
	})
}

// Count returns the number of cached files.
func (c *Cache) Count() (int, error) {
	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM tracks`).Scan(&n)
	return n, err
}
