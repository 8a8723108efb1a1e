// Package storage persists the client's only local state: the session
// token and a handful of display preferences, in a small SQLite
// key-value table. Domain data never lands here; the backend owns it.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dat0801/jarvis-cli/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Well-known keys.
const (
	KeyToken    = "auth_token"
	KeyCurrency = "currency"
	KeyDarkMode = "dark_mode"
	KeyLanguage = "language"
)

// Store is the SQLite-backed key-value store.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: storage path is empty", common.ErrInvalidConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or common.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

// Set stores or replaces the value for key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}

// Token returns the stored session token, or empty when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, err := s.Get(ctx, KeyToken)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// SetToken stores the session token.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, KeyToken, token)
}

// ClearToken logs the client out locally.
func (s *Store) ClearToken(ctx context.Context) error {
	return s.Delete(ctx, KeyToken)
}

// Preferences are the display settings the client keeps locally.
type Preferences struct {
	Currency string
	Language string
	DarkMode bool
}

// Preferences loads all display preferences, applying defaults for any
// that were never set.
func (s *Store) Preferences(ctx context.Context) (Preferences, error) {
	prefs := Preferences{Currency: "USD", Language: "en"}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM settings WHERE key IN (?, ?, ?)`,
		KeyCurrency, KeyLanguage, KeyDarkMode)
	if err != nil {
		return prefs, fmt.Errorf("failed to load preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return prefs, fmt.Errorf("failed to scan preference: %w", err)
		}
		switch key {
		case KeyCurrency:
			prefs.Currency = value
		case KeyLanguage:
			prefs.Language = value
		case KeyDarkMode:
			prefs.DarkMode = value == "true"
		}
	}
	if err := rows.Err(); err != nil {
		return prefs, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// SetPreferences stores all display preferences.
func (s *Store) SetPreferences(ctx context.Context, prefs Preferences) error {
	darkMode := "false"
	if prefs.DarkMode {
		darkMode = "true"
	}
	pairs := map[string]string{
		KeyCurrency: prefs.Currency,
		KeyLanguage: prefs.Language,
		KeyDarkMode: darkMode,
	}
	for key, value := range pairs {
		if err := s.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
