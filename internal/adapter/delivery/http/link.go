package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/ryodanqqe/link-shortener/internal/entity"
)

type linkUseCase interface {
	Create(ctx context.Context, owner *entity.User, originalURL, shortToken string, isPrivate bool) (*entity.Link, error)
	ListByOwner(ctx context.Context, owner *entity.User) ([]*entity.Link, error)
	Show(ctx context.Context, shortToken string, requester *entity.User) (*entity.Link, error)
	Redirect(ctx context.Context, shortToken string, requester *entity.User) (string, error)
}

type linkHandler struct {
	useCase  linkUseCase
	validate *validator.Validate
}

func newLinkHandler(useCase linkUseCase, validate *validator.Validate) *linkHandler {
	return &linkHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *linkHandler) store(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	link, err := h.useCase.Create(r.Context(), userFromContext(r.Context()), req.OriginalURL, req.ShortToken, req.IsPrivate)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrShortTokenExists):
			respondError(w, r, http.StatusUnprocessableEntity, shortTokenTakenResponse)
		case errors.Is(err, entity.ErrInvalidURL):
			respondError(w, r, http.StatusUnprocessableEntity, invalidURLResponse)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLinkResponse(link))
}

func (h *linkHandler) index(w http.ResponseWriter, r *http.Request) {
	links, err := h.useCase.ListByOwner(r.Context(), userFromContext(r.Context()))
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLinkResponses(links))
}

func (h *linkHandler) show(w http.ResponseWriter, r *http.Request) {
	shortToken := chi.URLParam(r, "token")

	link, err := h.useCase.Show(r.Context(), shortToken, userFromContext(r.Context()))
	if err != nil {
		h.respondLookupError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLinkResponse(link))
}

func (h *linkHandler) redirect(w http.ResponseWriter, r *http.Request) {
	shortToken := chi.URLParam(r, "token")

	target, err := h.useCase.Redirect(r.Context(), shortToken, userFromContext(r.Context()))
	if err != nil {
		h.respondLookupError(w, r, err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

func (h *linkHandler) respondLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrLinkNotFound):
		respondError(w, r, http.StatusNotFound, linkNotFoundResponse)
	case errors.Is(err, entity.ErrLinkPrivate):
		respondError(w, r, http.StatusForbidden, linkPrivateResponse)
	default:
		respondServerError(w, r, err)
	}
}
