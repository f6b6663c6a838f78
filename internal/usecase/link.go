package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ryodanqqe/link-shortener/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ShortTokenAlphabet is the set of characters generated short tokens are drawn from.
const ShortTokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultShortTokenLength is the length of generated short tokens.
const DefaultShortTokenLength = 6

const maxRetries = 10

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short token")

type linkRepository interface {
	Save(ctx context.Context, userID int64, originalURL, shortToken string, isPrivate bool) (*entity.Link, error)
	RetrieveByShortToken(ctx context.Context, shortToken string) (*entity.Link, error)
	RetrieveByUserID(ctx context.Context, userID int64) ([]*entity.Link, error)
}

type LinkUseCase struct {
	shortTokenLength int
	linkRepo         linkRepository
}

func NewLinkUseCase(shortTokenLength int, linkRepo linkRepository) *LinkUseCase {
	if shortTokenLength <= 0 {
		shortTokenLength = DefaultShortTokenLength
	}

	return &LinkUseCase{
		shortTokenLength: shortTokenLength,
		linkRepo:         linkRepo,
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Create stores a link owned by owner. A non-empty shortToken is used verbatim and
// fails with entity.ErrShortTokenExists when taken. Otherwise a token is generated,
// and regenerated whenever the store reports a collision.
func (uc *LinkUseCase) Create(ctx context.Context, owner *entity.User, originalURL, shortToken string, isPrivate bool) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.Create"

	if owner == nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	if !isAbsoluteURL(originalURL) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	if shortToken != "" {
		link, err := uc.linkRepo.Save(ctx, owner.ID, originalURL, shortToken, isPrivate)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to create link: %w", op, err)
		}

		return link, nil
	}

	for i := 0; i < maxRetries; i++ {
		shortToken, err := gonanoid.Generate(ShortTokenAlphabet, uc.shortTokenLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short token: %w", op, err)
		}

		link, err := uc.linkRepo.Save(ctx, owner.ID, originalURL, shortToken, isPrivate)
		if err != nil {
			if errors.Is(err, entity.ErrShortTokenExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to create link: %w", op, err)
		}

		return link, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ListByOwner returns the links of owner in creation order.
func (uc *LinkUseCase) ListByOwner(ctx context.Context, owner *entity.User) ([]*entity.Link, error) {
	const op = "usecase.LinkUseCase.ListByOwner"

	if owner == nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	links, err := uc.linkRepo.RetrieveByUserID(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links: %w", op, err)
	}

	if links == nil {
		links = []*entity.Link{}
	}

	return links, nil
}

// GetByToken returns the link with the given short token regardless of its privacy.
func (uc *LinkUseCase) GetByToken(ctx context.Context, shortToken string) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.GetByToken"

	link, err := uc.linkRepo.RetrieveByShortToken(ctx, shortToken)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get link: %w", op, err)
	}

	return link, nil
}

// Show returns a public link. Private links fail with entity.ErrLinkPrivate for
// every requester, the owner included.
func (uc *LinkUseCase) Show(ctx context.Context, shortToken string, requester *entity.User) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.Show"

	link, err := uc.GetByToken(ctx, shortToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if link.IsPrivate {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkPrivate)
	}

	return link, nil
}

// Redirect returns the original URL of a public link, under the same policy as Show.
func (uc *LinkUseCase) Redirect(ctx context.Context, shortToken string, requester *entity.User) (string, error) {
	const op = "usecase.LinkUseCase.Redirect"

	link, err := uc.Show(ctx, shortToken, requester)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return link.OriginalURL, nil
}
