// Package userlist реализует HTTP-обработчик списка пользователей
// для админ-консоли. Каждая запись дополняется вычисленным статусом
// плана: active, expiring или expired.
package userlist

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// Порог в днях, ниже которого активный план считается истекающим.
const expiringThresholdDays = 7

// Handler обрабатывает HTTP-запросы на получение списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка пользователей.
type Service interface {
	List(ctx context.Context) ([]*models.User, bool, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Description Возвращает всех пользователей со статусом плана каждого. Требует заголовок X-Admin-Password.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Список пользователей"
// @Failure 500 {object} response.ErrorResponse "Хранилище и кеш недоступны"
// @Security AdminPassword
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, stale, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}

	now := time.Now().UnixMilli()
	items := make([]map[string]any, 0, len(users))
	for _, u := range users {
		ent := plan.Evaluate(u, now)
		items = append(items, map[string]any{
			"id":          u.ID,
			"mobile":      u.Mobile,
			"email":       u.Email,
			"name":        u.Name,
			"plan_start":  u.PlanStart,
			"plan_months": u.PlanMonths,
			"plan_expiry": ent.PlanExpiry,
			"days_left":   ent.DaysLeft,
			"status":      planStatus(ent.DaysLeft),
			"notes":       u.Notes,
			"created_at":  u.CreatedAt,
		})
	}

	log.Info("users listed", slog.Int("count", len(items)), slog.Bool("stale", stale))

	data := map[string]any{
		"total": len(items),
		"users": items,
	}
	if stale {
		render.JSON(w, r, response.OKStale(data))
		return
	}
	render.JSON(w, r, response.OKWithData(data))
}

func planStatus(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return "expired"
	case daysLeft <= expiringThresholdDays:
		return "expiring"
	default:
		return "active"
	}
}
