// Package redis implements a token repository on redis, as an alternative to the
// postgres tokens table.
//
// Layout:
//
//	token:<hash>          -> owning user id
//	user_tokens:<user id> -> set of hashes owned by the user
//	token_seq             -> counter used for token ids
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ryodanqqe/link-shortener/internal/entity"
)

const (
	tokenKeyPrefix      = "token:"
	userTokensKeyPrefix = "user_tokens:"
	tokenSeqKey         = "token_seq"
)

// saveScript sets the token key only if absent and indexes it under its user.
const saveScript = `
if redis.call("SETNX", KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call("SADD", KEYS[2], ARGV[2])
return 1
`

// removeScript deletes every token of a user and the index set in one step.
const removeScript = `
local hashes = redis.call("SMEMBERS", KEYS[1])
for _, h in ipairs(hashes) do
  redis.call("DEL", ARGV[1] .. h)
end
redis.call("DEL", KEYS[1])
return #hashes
`

var (
	saveLua   = redis.NewScript(saveScript)
	removeLua = redis.NewScript(removeScript)
)

func tokenKey(hash string) string {
	return tokenKeyPrefix + hash
}

func userTokensKey(userID int64) string {
	return userTokensKeyPrefix + strconv.FormatInt(userID, 10)
}

type TokenRepository struct {
	rdb redis.UniversalClient
	now func() time.Time
}

func NewTokenRepository(rdb redis.UniversalClient) *TokenRepository {
	return &TokenRepository{
		rdb: rdb,
		now: time.Now,
	}
}

func (r *TokenRepository) Save(ctx context.Context, userID int64, hash string) (*entity.Token, error) {
	const op = "adapter.repository.redis.TokenRepository.Save"

	id, err := r.rdb.Incr(ctx, tokenSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to allocate token id: %w", op, err)
	}

	keys := []string{tokenKey(hash), userTokensKey(userID)}

	saved, err := saveLua.Run(ctx, r.rdb, keys, userID, hash).Int()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to save token: %w", op, err)
	}

	if saved == 0 {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrTokenExists)
	}

	return &entity.Token{
		ID:        id,
		UserID:    userID,
		Hash:      hash,
		CreatedAt: r.now().UTC(),
	}, nil
}

func (r *TokenRepository) RetrieveUserID(ctx context.Context, hash string) (int64, error) {
	const op = "adapter.repository.redis.TokenRepository.RetrieveUserID"

	userID, err := r.rdb.Get(ctx, tokenKey(hash)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("%s: %w", op, entity.ErrTokenNotFound)
		}

		return 0, fmt.Errorf("%s: failed to get token: %w", op, err)
	}

	return userID, nil
}

func (r *TokenRepository) RemoveByUserID(ctx context.Context, userID int64) error {
	const op = "adapter.repository.redis.TokenRepository.RemoveByUserID"

	keys := []string{userTokensKey(userID)}

	if err := removeLua.Run(ctx, r.rdb, keys, tokenKeyPrefix).Err(); err != nil {
		return fmt.Errorf("%s: failed to remove tokens: %w", op, err)
	}

	return nil
}
