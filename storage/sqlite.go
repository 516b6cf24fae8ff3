// Package storage provides a SQLite-based implementation of the Storage interface.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/sapsa07/ecommerce"
)

// sqliteDSN opens a private SQLite database that lives only as long as the
// SQLiteStorage holding it.
const sqliteDSN = ":memory:"

const (
	sqliteCreateTableSQL = `
		CREATE TABLE IF NOT EXISTS user_settings (
			user_id TEXT NOT NULL PRIMARY KEY,
			country TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`

	sqliteUpsertSQL = `
		INSERT INTO user_settings (user_id, country, language, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id)
		DO UPDATE SET country = excluded.country, language = excluded.language, updated_at = excluded.updated_at
	`

	sqliteSelectSQL = `
		SELECT user_id, country, language, updated_at
		FROM user_settings
		WHERE user_id = ?
	`

	sqliteSelectAllSQL = `
		SELECT user_id, country, language, updated_at
		FROM user_settings
	`

	sqliteDeleteSQL = `
		DELETE FROM user_settings
		WHERE user_id = ?
	`
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens a private in-memory SQLite database and creates the
// schema. Every instance starts empty and its contents are discarded on Close.
func NewSQLiteStorage() (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", sqliteDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) migrate() error {
	_, err := s.db.Exec(sqliteCreateTableSQL)
	return err
}

// Get retrieves the settings for userID.
// It returns ErrNotFound if the user has no entry.
func (s *SQLiteStorage) Get(ctx context.Context, userID string) (*ecommerce.Settings, error) {
	settings, err := scanSettings(s.db.QueryRowContext(ctx, sqliteSelectSQL, userID))
	if err == sql.ErrNoRows {
		return nil, ecommerce.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings, nil
}

// Set stores or replaces the settings for settings.UserID.
func (s *SQLiteStorage) Set(ctx context.Context, settings *ecommerce.Settings) error {
	updatedAt := settings.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, sqliteUpsertSQL,
		settings.UserID,
		string(settings.Country),
		string(settings.Language),
		updatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to set user settings: %w", err)
	}

	return nil
}

// Delete removes the entry for userID.
// It returns ErrNotFound if the user has no entry.
func (s *SQLiteStorage) Delete(ctx context.Context, userID string) error {
	result, err := s.db.ExecContext(ctx, sqliteDeleteSQL, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user settings: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return ecommerce.ErrNotFound
	}

	return nil
}

// GetAll retrieves all stored entries keyed by user ID.
func (s *SQLiteStorage) GetAll(ctx context.Context) (map[string]*ecommerce.Settings, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query user settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*ecommerce.Settings)
	for rows.Next() {
		settings, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user settings: %w", err)
		}
		out[settings.UserID] = settings
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return out, nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSettings(row rowScanner) (*ecommerce.Settings, error) {
	var (
		settings          ecommerce.Settings
		country, language string
	)
	if err := row.Scan(&settings.UserID, &country, &language, &settings.UpdatedAt); err != nil {
		return nil, err
	}
	settings.Country = ecommerce.Country(country)
	settings.Language = ecommerce.Language(language)
	return &settings, nil
}
