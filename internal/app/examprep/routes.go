// Package examprep предоставляет маршруты HTTP-приложения.
package examprep

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/examprep-backend/internal/config"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/admin/usercreate"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/admin/userdelete"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/admin/userrenew"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/content/gk"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/content/notifications"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/content/qna"
	contenttest "github.com/magabrotheeeer/examprep-backend/internal/http/handlers/content/test"
	"github.com/magabrotheeeer/examprep-backend/internal/http/handlers/health"
	"github.com/magabrotheeeer/examprep-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/jwt"
	adminservice "github.com/magabrotheeeer/examprep-backend/internal/services/admin"
	authservice "github.com/magabrotheeeer/examprep-backend/internal/services/auth"
	contentservice "github.com/magabrotheeeer/examprep-backend/internal/services/content"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker, authService *authservice.AuthService, adminService *adminservice.AdminService, contentService *contentservice.ContentService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа админ-консоли, защищена паролем в заголовке
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminMiddleware(cfg.AdminPasswordHash, logger))
			r.Get("/admin/users", userlist.New(logger, adminService).ServeHTTP)
			r.Post("/admin/users", usercreate.New(logger, adminService).ServeHTTP)
			r.Put("/admin/users/{id}/renew", userrenew.New(logger, adminService).ServeHTTP)
			r.Delete("/admin/users/{id}", userdelete.New(logger, adminService).ServeHTTP)
		})

		// Группа контента с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.EntitlementMiddleware(logger, authService))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/content/qna/{subject}", qna.New(logger, contentService).ServeHTTP)
			r.Get("/content/test", contenttest.New(logger, contentService).ServeHTTP)
			r.Get("/content/gk", gk.New(logger, contentService).ServeHTTP)
			r.Get("/content/notifications", notifications.New(logger, contentService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
