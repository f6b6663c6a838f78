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

const linkColumns = `id, user_id, original_url, short_token, is_private, created_at, updated_at`

type linkDB struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	OriginalURL string    `db:"original_url"`
	ShortToken  string    `db:"short_token"`
	IsPrivate   bool      `db:"is_private"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (l *linkDB) toEntity() *entity.Link {
	return &entity.Link{
		ID:          l.ID,
		UserID:      l.UserID,
		OriginalURL: l.OriginalURL,
		ShortToken:  l.ShortToken,
		IsPrivate:   l.IsPrivate,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type LinkRepository struct {
	db *sqlx.DB
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Save inserts a link. A short token that is already stored yields entity.ErrShortTokenExists;
// the unique constraint decides, so concurrent inserts of one token cannot both succeed.
func (r *LinkRepository) Save(ctx context.Context, userID int64, originalURL, shortToken string, isPrivate bool) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.Save"
	const query = `INSERT INTO links(user_id, original_url, short_token, is_private) VALUES ($1, $2, $3, $4) RETURNING ` + linkColumns

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, userID, originalURL, shortToken, isPrivate); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortTokenExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into links table: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) RetrieveByShortToken(ctx context.Context, shortToken string) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveByShortToken"
	const query = `SELECT ` + linkColumns + ` FROM links WHERE short_token = $1`

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, shortToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from links table: %w", op, err)
	}

	return link.toEntity(), nil
}

// RetrieveByUserID returns the links of a user in creation order.
func (r *LinkRepository) RetrieveByUserID(ctx context.Context, userID int64) ([]*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveByUserID"
	const query = `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 ORDER BY id`

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from links table: %w", op, err)
	}

	links := make([]*entity.Link, 0, len(rows))
	for i := range rows {
		links = append(links, rows[i].toEntity())
	}

	return links, nil
}
