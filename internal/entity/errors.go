package entity

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when attempting to create a user with an email that already exists.
	ErrEmailTaken = errors.New("email taken")
	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	// Both cases share this error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when a bearer token is missing or does not resolve to a user.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotSuperuser is returned when a non-superuser attempts a superuser-only operation.
	ErrNotSuperuser = errors.New("not superuser")

	// ErrTokenNotFound is returned when no live token matches the presented secret.
	ErrTokenNotFound = errors.New("token not found")
	// ErrTokenExists is returned when a token hash is already stored.
	ErrTokenExists = errors.New("token exists")

	// ErrLinkNotFound is returned when a link with the specified short token cannot be found.
	ErrLinkNotFound = errors.New("link not found")
	// ErrLinkPrivate is returned when a private link is requested through the public lookup.
	ErrLinkPrivate = errors.New("link private")
	// ErrShortTokenExists is returned when attempting to create a link with a short token that already exists.
	ErrShortTokenExists = errors.New("token taken")
	// ErrInvalidURL is returned when the original URL is not an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
)
