// ABOUTME: SQLite-backed credential persistence that survives application restarts
// ABOUTME: Stores the single bearer token under a fixed key, last writer wins

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"openwiki-client/core/interfaces"
)

// credentialKey is the fixed name the bearer token is stored under. There is
// no multi-session model: one row, overwritten on every Set.
const credentialKey = "token"

// Store implements the CredentialStore interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a new SQLite credential store
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "openwiki.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the credentials table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS credentials (
			name TEXT PRIMARY KEY,
			token TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// Set stores the bearer token, replacing any previous one
func (s *Store) Set(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}

	query := `
		INSERT OR REPLACE INTO credentials (name, token)
		VALUES (?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, credentialKey, token)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Get returns the stored token, or ErrNoCredential if none is stored
func (s *Store) Get(ctx context.Context) (string, error) {
	var token string

	query := "SELECT token FROM credentials WHERE name = ?"
	err := s.db.QueryRowContext(ctx, query, credentialKey).Scan(&token)

	if err == sql.ErrNoRows {
		return "", interfaces.ErrNoCredential
	}

	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	return token, nil
}

// Clear removes the stored token; clearing an empty store is not an error
func (s *Store) Clear(ctx context.Context) error {
	query := "DELETE FROM credentials WHERE name = ?"

	_, err := s.db.ExecContext(ctx, query, credentialKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	return nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}
