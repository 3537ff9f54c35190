package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filebox/internal/client/migrations"
	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/pressly/goose/v3"
)

// SQLiteStore keeps the session in a local SQLite key-value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (creating if needed) the session database at dsn and applies
// the embedded migrations. The caller owns the returned *sql.DB.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, true, nil
}

// Get reads both keys. If either is missing the zero Session is returned;
// a half-written session is never visible to callers.
func (s *SQLiteStore) Get(ctx context.Context) (models.Session, error) {
	token, okToken, err := s.get(ctx, tokenKey)
	if err != nil {
		return models.Session{}, err
	}
	username, okName, err := s.get(ctx, usernameKey)
	if err != nil {
		return models.Session{}, err
	}
	if !okToken || !okName {
		return models.Session{}, nil
	}
	return models.Session{Token: token, Username: username}, nil
}

// Set writes both keys in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, token, username string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session write: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := tx.ExecContext(ctx, upsert, tokenKey, token); err != nil {
		return fmt.Errorf("failed to set session token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, usernameKey, username); err != nil {
		return fmt.Errorf("failed to set session username: %w", err)
	}
	return tx.Commit()
}

// Clear removes both keys in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, tokenKey, usernameKey)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) IsAuthenticated(ctx context.Context) (bool, error) {
	sess, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return sess.IsAuthenticated(), nil
}
