package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ryodanqqe/link-shortener/internal/config"
	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/ryodanqqe/link-shortener/pkg/redis"

	pgrepo "github.com/ryodanqqe/link-shortener/internal/adapter/repository/postgres"
	redisrepo "github.com/ryodanqqe/link-shortener/internal/adapter/repository/redis"
)

type tokenStore interface {
	Save(ctx context.Context, userID int64, hash string) (*entity.Token, error)
	RetrieveUserID(ctx context.Context, hash string) (int64, error)
	RemoveByUserID(ctx context.Context, userID int64) error
}

// newTokenStore returns the token store selected by cfg.TokenStore together
// with a function releasing its resources.
func newTokenStore(ctx context.Context, cfg *config.Config, db *sqlx.DB) (tokenStore, func() error, error) {
	const op = "app.newTokenStore"

	switch cfg.TokenStore {
	case config.TokenStoreRedis:
		rdb, err := redis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return redisrepo.NewTokenRepository(rdb), rdb.Close, nil
	case config.TokenStorePostgres, "":
		return pgrepo.NewTokenRepository(db), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%s: unknown token store %q", op, cfg.TokenStore)
	}
}
