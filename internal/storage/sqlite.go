// Package storage keeps per-visitor theme preferences in SQLite.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zachkp/folio/internal/theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	visitor TEXT NOT NULL,       -- hashed visitor id, never the raw cookie
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL, -- unix seconds
	PRIMARY KEY (visitor, key)
)`

// DB wraps the preference database.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &DB{db: db, now: time.Now}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// HashVisitor returns the stored form of a visitor id.
func HashVisitor(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])[:32]
}

// Preferences returns the theme store for one visitor.
func (d *DB) Preferences(visitorID string) *PreferenceStore {
	return &PreferenceStore{db: d, visitor: HashVisitor(visitorID)}
}

// Cleanup deletes preferences that have not been written for maxAge.
func (d *DB) Cleanup(maxAge time.Duration) (int64, error) {
	cutoff := d.now().Add(-maxAge).Unix()
	result, err := d.db.Exec(`DELETE FROM preferences WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup preferences: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows > 0 {
		log.Printf("Preference cleanup: removed %d entries older than %s", rows, maxAge)
	}
	return rows, nil
}

// PreferenceStore is a theme.Store scoped to a single visitor.
type PreferenceStore struct {
	db      *DB
	visitor string
}

func (s *PreferenceStore) Load() (string, error) {
	var value string
	err := s.db.db.QueryRow(
		`SELECT value FROM preferences WHERE visitor = ? AND key = ?`,
		s.visitor, theme.StorageKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", theme.ErrNoPreference
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *PreferenceStore) Save(value string) error {
	_, err := s.db.db.Exec(`
		INSERT INTO preferences (visitor, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.visitor, theme.StorageKey, value, s.db.now().Unix())
	if err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}
