package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryodanqqe/link-shortener/internal/entity"
)

type userRepository interface {
	Save(ctx context.Context, name, email, passwordHash string, isSuperuser bool) (*entity.User, error)
	RetrieveByEmail(ctx context.Context, email string) (*entity.User, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// CredentialStore keeps user records and checks their passwords.
// Plaintext passwords never leave this type; only their hashes are stored.
type CredentialStore struct {
	userRepo userRepository
	hasher   passwordHasher
}

func NewCredentialStore(userRepo userRepository, hasher passwordHasher) *CredentialStore {
	return &CredentialStore{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail returns the user with the given email or entity.ErrUserNotFound.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const op = "usecase.CredentialStore.FindByEmail"

	user, err := s.userRepo.RetrieveByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to find user: %w", op, err)
	}

	return user, nil
}

// FindByID returns the user with the given id or entity.ErrUserNotFound.
func (s *CredentialStore) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	const op = "usecase.CredentialStore.FindByID"

	user, err := s.userRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to find user: %w", op, err)
	}

	return user, nil
}

// Create hashes password and stores a new user. It fails with entity.ErrEmailTaken
// when the email is already registered.
func (s *CredentialStore) Create(ctx context.Context, name, email, password string, isSuperuser bool) (*entity.User, error) {
	const op = "usecase.CredentialStore.Create"

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	user, err := s.userRepo.Save(ctx, strings.TrimSpace(name), normalizeEmail(email), hash, isSuperuser)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	return user, nil
}

// VerifyPassword reports whether password matches the stored hash of user.
func (s *CredentialStore) VerifyPassword(user *entity.User, password string) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}

	return s.hasher.Verify(password, user.PasswordHash)
}
