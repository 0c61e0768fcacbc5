package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	id "passgate/pkg/domain"
)

// Schema for the credential table. Applied by Migrate; kept here so the store
// owns its storage shape.
const schema = `
CREATE TABLE IF NOT EXISTS user_credentials (
    user_id        UUID PRIMARY KEY,
    password_hash  TEXT NOT NULL,
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore persists credentials in PostgreSQL via pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the credential table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate user_credentials: %w", err)
	}
	return nil
}

func (s *PostgresStore) Set(ctx context.Context, userID id.UserID, password string) error {
	encoded, err := hashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO user_credentials (user_id, password_hash, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, updated_at = now()`,
		userID.String(), encoded,
	)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

func (s *PostgresStore) Verify(ctx context.Context, userID id.UserID, password string) (bool, error) {
	encoded, err := s.fetch(ctx, userID)
	if err != nil {
		return false, err
	}
	return verifyPassword(password, encoded)
}

// VerifyAndSet runs inside a transaction with the credential row locked so a
// failed verification never races a concurrent update into a partial write.
func (s *PostgresStore) VerifyAndSet(ctx context.Context, userID id.UserID, oldPassword, newPassword string) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var encoded string
	err = tx.QueryRow(ctx,
		`SELECT password_hash FROM user_credentials WHERE user_id = $1 FOR UPDATE`,
		userID.String(),
	).Scan(&encoded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("fetch credential: %w", err)
	}

	match, err := verifyPassword(oldPassword, encoded)
	if err != nil {
		return false, err
	}
	if !match {
		return false, nil
	}

	fresh, err := hashPassword(newPassword)
	if err != nil {
		return false, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE user_credentials SET password_hash = $2, updated_at = now() WHERE user_id = $1`,
		userID.String(), fresh,
	); err != nil {
		return false, fmt.Errorf("update credential: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

func (s *PostgresStore) fetch(ctx context.Context, userID id.UserID) (string, error) {
	var encoded string
	err := s.pool.QueryRow(ctx,
		`SELECT password_hash FROM user_credentials WHERE user_id = $1`,
		userID.String(),
	).Scan(&encoded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("fetch credential: %w", err)
	}
	return encoded, nil
}
