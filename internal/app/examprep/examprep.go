// Package examprep собирает HTTP-приложение: хранилище, миграции,
// кеш, сервисы и маршруты.
package examprep

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/examprep-backend/internal/cache"
	"github.com/magabrotheeeer/examprep-backend/internal/config"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/examprep-backend/internal/migrations"
	adminservice "github.com/magabrotheeeer/examprep-backend/internal/services/admin"
	authservice "github.com/magabrotheeeer/examprep-backend/internal/services/auth"
	contentservice "github.com/magabrotheeeer/examprep-backend/internal/services/content"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	authService := authservice.NewAuthService(db, cacheRedis, jwtMaker, logger)
	adminService := adminservice.NewAdminService(db, cacheRedis, logger)
	contentService := contentservice.NewContentService(cfg.FreeTier, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, jwtMaker, authService, adminService, contentService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
