// Package storage persists setting values between sessions. Only values
// are stored; the category tree itself is rebuilt from the definition
// every session.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Store handles setting-value persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the value store at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS setting_values (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Key derives the storage key for a setting: the owning group's breadcrumb
// (a category path) plus the setting's untranslated description key, so
// stored values survive retranslation.
func Key(group *model.Group, setting *model.Setting) string {
	return group.Breadcrumb() + model.BreadcrumbDelimiter + setting.DescriptionKey()
}

// Set saves a value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO setting_values (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save value: %w", err)
	}
	return nil
}

// Get loads the value for key. The second return is false when no value
// has been stored.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM setting_values WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load value: %w", err)
	}
	return value, true, nil
}

// All returns every stored key/value pair.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM setting_values`)
	if err != nil {
		return nil, fmt.Errorf("list values: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Delete removes the value for key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM setting_values WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete value: %w", err)
	}
	return nil
}
