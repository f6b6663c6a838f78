package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryodanqqe/link-shortener/internal/entity"
)

// AuthUseCase implements login, logout and user registration on top of
// a CredentialStore and a TokenIssuer.
type AuthUseCase struct {
	credentials *CredentialStore
	tokens      *TokenIssuer
}

func NewAuthUseCase(credentials *CredentialStore, tokens *TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		credentials: credentials,
		tokens:      tokens,
	}
}

// Login checks the credentials and issues a new bearer token.
// An unknown email and a wrong password both fail with entity.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	const op = "usecase.AuthUseCase.Login"

	user, err := uc.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !uc.credentials.VerifyPassword(user, password) {
		return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
	}

	secret, err := uc.tokens.Issue(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return secret, nil
}

// Logout revokes every token of user, not only the one used for the request.
func (uc *AuthUseCase) Logout(ctx context.Context, user *entity.User) error {
	const op = "usecase.AuthUseCase.Logout"

	if err := uc.tokens.RevokeAll(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Authenticate resolves a presented bearer secret to its user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, secret string) (*entity.User, error) {
	const op = "usecase.AuthUseCase.Authenticate"

	user, err := uc.tokens.Resolve(ctx, secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// Register creates a regular user on behalf of requester, who must be a superuser.
// Registration never grants superuser.
func (uc *AuthUseCase) Register(ctx context.Context, requester *entity.User, name, email, password string) (*entity.User, error) {
	const op = "usecase.AuthUseCase.Register"

	if requester == nil || !requester.IsSuperuser {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNotSuperuser)
	}

	user, err := uc.credentials.Create(ctx, name, email, password, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// SeedSuperuser creates a superuser. It is meant for bootstrapping a fresh database.
func (uc *AuthUseCase) SeedSuperuser(ctx context.Context, name, email, password string) (*entity.User, error) {
	const op = "usecase.AuthUseCase.SeedSuperuser"

	user, err := uc.credentials.Create(ctx, name, email, password, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
