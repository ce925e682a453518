package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

// EntitlementService описывает интерфейс для вычисления прав доступа.
type EntitlementService interface {
	Entitlement(ctx context.Context, userID string) (plan.Entitlement, error)
}

// EntitlementMiddleware возвращает HTTP middleware, который вычисляет
// текущие права доступа пользователя и кладет их в контекст запроса.
// Права всегда вычисляются заново из данных плана: истекший план сразу
// переводит пользователя на бесплатный уровень, без выхода из аккаунта.
func EntitlementMiddleware(log *slog.Logger, service EntitlementService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.EntitlementMiddleware"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			userID, ok := r.Context().Value(UserID).(string)
			if !ok || userID == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			ent, err := service.Entitlement(r.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					log.Error("user no longer exists", slog.String("user_id", userID))
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("user not found"))
					return
				}
				log.Error("failed to evaluate entitlement", sl.Err(err))
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("service temporarily unavailable"))
				return
			}

			ctx := context.WithValue(r.Context(), EntitlementKey, ent)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EntitlementFromContext достает снимок прав доступа из контекста запроса.
func EntitlementFromContext(ctx context.Context) (plan.Entitlement, bool) {
	ent, ok := ctx.Value(EntitlementKey).(plan.Entitlement)
	return ent, ok
}
