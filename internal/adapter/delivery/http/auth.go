package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/ryodanqqe/link-shortener/pkg/password"
)

type authUseCase interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, user *entity.User) error
	Authenticate(ctx context.Context, secret string) (*entity.User, error)
	Register(ctx context.Context, requester *entity.User, name, email, password string) (*entity.User, error)
}

type authHandler struct {
	useCase  authUseCase
	validate *validator.Validate
}

func newAuthHandler(useCase authUseCase, validate *validator.Validate) *authHandler {
	return &authHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	token, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			respondError(w, r, http.StatusUnprocessableEntity, invalidCredentialsResponse)
			return
		}

		respondServerError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, tokenResponse{Token: token})
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.useCase.Logout(r.Context(), userFromContext(r.Context())); err != nil {
		respondServerError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, messageResponse{Message: "Logged out"})
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Register(r.Context(), userFromContext(r.Context()), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotSuperuser):
			respondError(w, r, http.StatusForbidden, notSuperuserResponse)
		case errors.Is(err, entity.ErrEmailTaken):
			respondError(w, r, http.StatusUnprocessableEntity, emailTakenResponse)
		case errors.Is(err, password.ErrPasswordTooLong):
			respondError(w, r, http.StatusUnprocessableEntity, passwordTooLongResponse)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toUserResponse(user))
}

func (h *authHandler) currentUser(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserResponse(userFromContext(r.Context())))
}
