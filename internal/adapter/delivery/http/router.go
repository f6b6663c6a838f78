// Package http provides the HTTP delivery layer for the link shortener service.
// This package contains the HTTP handlers, authentication middleware and related
// types used for processing incoming requests, validating input, and formatting responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the link shortener API.
func NewRouter(logger *httplog.Logger, authUseCase authUseCase, linkUseCase linkUseCase) *chi.Mux {
	r := chi.NewRouter()
	m := newMetrics()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(m.middleware)

	r.Method(http.MethodGet, "/metrics", m.handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidator()
	auth := newAuthHandler(authUseCase, validate)
	links := newLinkHandler(linkUseCase, validate)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlePing)
		r.Post("/login", auth.login)

		r.Group(func(r chi.Router) {
			r.Use(authenticate(authUseCase))

			r.Post("/logout", auth.logout)
			r.With(requireSuperuser).Post("/register", auth.register)
			r.Get("/user", auth.currentUser)

			r.Route("/links", func(r chi.Router) {
				r.Post("/store", links.store)
				r.Get("/index", links.index)
				r.Get("/show/{token}", links.show)
				r.Get("/redirect/{token}", links.redirect)
			})
		})
	})

	return r
}
