package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/ryodanqqe/link-shortener/pkg/token"
)

type tokenRepository interface {
	Save(ctx context.Context, userID int64, hash string) (*entity.Token, error)
	RetrieveUserID(ctx context.Context, hash string) (int64, error)
	RemoveByUserID(ctx context.Context, userID int64) error
}

// TokenIssuer hands out bearer secrets and resolves them back to users.
// Secrets are shown once; the repository only ever sees their hashes.
type TokenIssuer struct {
	tokenRepo tokenRepository
	userRepo  userRepository
	generate  func() (string, error)
}

func NewTokenIssuer(tokenRepo tokenRepository, userRepo userRepository) *TokenIssuer {
	return &TokenIssuer{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		generate:  token.Generate,
	}
}

// Issue creates a new token for user and returns its secret.
func (i *TokenIssuer) Issue(ctx context.Context, user *entity.User) (string, error) {
	const op = "usecase.TokenIssuer.Issue"

	secret, err := i.generate()
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate secret: %w", op, err)
	}

	if _, err := i.tokenRepo.Save(ctx, user.ID, token.Hash(secret)); err != nil {
		return "", fmt.Errorf("%s: failed to save token: %w", op, err)
	}

	return secret, nil
}

// Resolve returns the owner of the live token matching secret.
// Unknown secrets and tokens of vanished users yield entity.ErrUnauthenticated.
func (i *TokenIssuer) Resolve(ctx context.Context, secret string) (*entity.User, error) {
	const op = "usecase.TokenIssuer.Resolve"

	if secret == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	userID, err := i.tokenRepo.RetrieveUserID(ctx, token.Hash(secret))
	if err != nil {
		if errors.Is(err, entity.ErrTokenNotFound) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
		}

		return nil, fmt.Errorf("%s: failed to retrieve token: %w", op, err)
	}

	user, err := i.userRepo.RetrieveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
		}

		return nil, fmt.Errorf("%s: failed to retrieve user: %w", op, err)
	}

	return user, nil
}

// RevokeAll deletes every live token of user. Revoking a user without tokens succeeds.
func (i *TokenIssuer) RevokeAll(ctx context.Context, user *entity.User) error {
	const op = "usecase.TokenIssuer.RevokeAll"

	if err := i.tokenRepo.RemoveByUserID(ctx, user.ID); err != nil {
		return fmt.Errorf("%s: failed to remove tokens: %w", op, err)
	}

	return nil
}
