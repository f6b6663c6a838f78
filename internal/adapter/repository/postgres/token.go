package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ryodanqqe/link-shortener/internal/entity"
)

type tokenDB struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Hash      string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *tokenDB) toEntity() *entity.Token {
	return &entity.Token{
		ID:        t.ID,
		UserID:    t.UserID,
		Hash:      t.Hash,
		CreatedAt: t.CreatedAt,
	}
}

// TokenRepository stores bearer token hashes in the tokens table.
type TokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Save(ctx context.Context, userID int64, hash string) (*entity.Token, error) {
	const op = "adapter.repository.postgres.TokenRepository.Save"
	const query = `INSERT INTO tokens(user_id, token_hash) VALUES ($1, $2) RETURNING id, user_id, token_hash, created_at`

	var token tokenDB

	if err := r.db.GetContext(ctx, &token, query, userID, hash); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrTokenExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into tokens table: %w", op, err)
	}

	return token.toEntity(), nil
}

func (r *TokenRepository) RetrieveUserID(ctx context.Context, hash string) (int64, error) {
	const op = "adapter.repository.postgres.TokenRepository.RetrieveUserID"
	const query = `SELECT user_id FROM tokens WHERE token_hash = $1`

	var userID int64

	if err := r.db.GetContext(ctx, &userID, query, hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, entity.ErrTokenNotFound)
		}

		return 0, fmt.Errorf("%s: failed to get row from tokens table: %w", op, err)
	}

	return userID, nil
}

// RemoveByUserID deletes all tokens of a user. Deleting nothing is not an error.
func (r *TokenRepository) RemoveByUserID(ctx context.Context, userID int64) error {
	const op = "adapter.repository.postgres.TokenRepository.RemoveByUserID"
	const query = `DELETE FROM tokens WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%s: failed to delete from tokens table: %w", op, err)
	}

	return nil
}
