package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/password"
)

// AdminMiddleware возвращает HTTP middleware, который проверяет пароль
// админ-консоли в заголовке X-Admin-Password. Пароль сверяется с bcrypt-хэшем
// из конфигурации, при несовпадении возвращается 401 Unauthorized.
func AdminMiddleware(passwordHash string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			adminPassword := r.Header.Get("X-Admin-Password")
			if adminPassword == "" || password.CompareHash(passwordHash, adminPassword) != nil {
				log.Error("invalid admin password")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid admin password"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
