package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ryodanqqe/link-shortener/internal/entity"
)

type userCtxKey struct{}

func withUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// userFromContext returns the user resolved by authenticate, or nil.
func userFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userCtxKey{}).(*entity.User)
	return user
}

// bearerToken extracts the secret from an "Authorization: Bearer <secret>" header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, secret, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	secret = strings.TrimSpace(secret)
	return secret, secret != ""
}

// authenticate resolves the bearer token to a user and stores it in the request
// context. Requests without a live token are rejected with 401.
func authenticate(useCase authUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret, ok := bearerToken(r)
			if !ok {
				respondError(w, r, http.StatusUnauthorized, unauthenticatedResponse)
				return
			}

			user, err := useCase.Authenticate(r.Context(), secret)
			if err != nil {
				if errors.Is(err, entity.ErrUnauthenticated) {
					respondError(w, r, http.StatusUnauthorized, unauthenticatedResponse)
					return
				}

				respondServerError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}

// requireSuperuser must run after authenticate.
func requireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil || !user.IsSuperuser {
			respondError(w, r, http.StatusForbidden, notSuperuserResponse)
			return
		}

		next.ServeHTTP(w, r)
	})
}
