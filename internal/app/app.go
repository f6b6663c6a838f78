// Package app wires configuration, storage, use cases and the HTTP router into
// the commands exposed by the link-shortener binary.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/ryodanqqe/link-shortener/internal/config"
	"github.com/ryodanqqe/link-shortener/internal/entity"
	"github.com/ryodanqqe/link-shortener/internal/usecase"
	"github.com/ryodanqqe/link-shortener/pkg/password"
	"github.com/ryodanqqe/link-shortener/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/ryodanqqe/link-shortener/internal/adapter/delivery/http"
	pgrepo "github.com/ryodanqqe/link-shortener/internal/adapter/repository/postgres"
)

// NewLogger builds the application logger from the log section of cfg.
func NewLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger("link-shortener", httplog.Options{
		LogLevel: cfg.Log.SlogLevel(),
		JSON:     cfg.Log.JSON,
		Concise:  cfg.Log.Concise,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	return postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
}

func newAuthUseCase(cfg *config.Config, db *sqlx.DB, tokens tokenStore) *usecase.AuthUseCase {
	userRepo := pgrepo.NewUserRepository(db)
	credentials := usecase.NewCredentialStore(userRepo, password.NewBcrypt(cfg.BcryptCost))
	issuer := usecase.NewTokenIssuer(tokens, userRepo)

	return usecase.NewAuthUseCase(credentials, issuer)
}

// Run connects to the stores, applies pending migrations and serves the HTTP
// API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *httplog.Logger) error {
	const op = "app.Run"

	db, err := connectPostgres(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if _, err := postgres.MigrateUp(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	tokens, closeTokens, err := newTokenStore(ctx, cfg, db)
	if err != nil {
		return fmt.Errorf("%s: failed to init token store: %w", op, err)
	}
	defer closeTokens()

	authUseCase := newAuthUseCase(cfg, db, tokens)
	linkUseCase := usecase.NewLinkUseCase(cfg.ShortTokenLength, pgrepo.NewLinkRepository(db))

	router := delivery.NewRouter(logger, authUseCase, linkUseCase)
	server := newServer(ctx, cfg, router)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Env, "token_store", cfg.TokenStore)

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.WriteTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}

func newServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        handler,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
}

// Migrate applies all pending migrations, or rolls every migration back when down is set.
func Migrate(ctx context.Context, cfg *config.Config, logger *httplog.Logger, down bool) error {
	const op = "app.Migrate"

	migrateFn := postgres.MigrateUp
	direction := "up"
	if down {
		migrateFn = postgres.MigrateDown
		direction = "down"
	}

	changed, err := migrateFn(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		logger.InfoContext(ctx, "no migrations to apply", "direction", direction)
		return nil
	}

	logger.InfoContext(ctx, "migrations applied", "direction", direction)
	return nil
}

// Seed creates the superuser described by the seed section of cfg. An existing
// user with the same email is left untouched.
func Seed(ctx context.Context, cfg *config.Config, logger *httplog.Logger) error {
	const op = "app.Seed"

	db, err := connectPostgres(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	authUseCase := newAuthUseCase(cfg, db, pgrepo.NewTokenRepository(db))

	user, err := authUseCase.SeedSuperuser(ctx, cfg.Seed.Name, cfg.Seed.Email, cfg.Seed.Password)
	if err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			logger.InfoContext(ctx, "superuser already exists", "email", cfg.Seed.Email)
			return nil
		}

		return fmt.Errorf("%s: failed to seed superuser: %w", op, err)
	}

	logger.InfoContext(ctx, "superuser created", "id", user.ID, "email", user.Email)
	return nil
}
