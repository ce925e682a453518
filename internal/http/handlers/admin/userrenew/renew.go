// Package userrenew реализует HTTP-обработчик продления плана пользователя.
//
// Продление отсчитывается от максимума из текущего момента и действующей
// даты окончания плана, переданное число месяцев заменяет прежнее.
package userrenew

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

// Request — структура входных данных для продления плана.
type Request struct {
	PlanMonths int `json:"plan_months" validate:"required,oneof=1 3 6 12"`
}

// Handler обрабатывает HTTP-запросы на продление плана.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики продления.
type Service interface {
	Renew(ctx context.Context, userID string, additionalMonths int) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Продление плана пользователя
// @Description Продлевает план от максимума из текущего момента и даты окончания. Требует заголовок X-Admin-Password.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param id path string true "ID пользователя"
// @Param request body Request true "Число месяцев продления"
// @Success 200 {object} map[string]any "План продлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security AdminPassword
// @Router /admin/users/{id}/renew [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userrenew"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "id")
	if userID == "" {
		log.Error("missing user id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.Renew(r.Context(), userID, req.PlanMonths)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Error("user not found", slog.String("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to renew plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to renew plan"))
		return
	}

	log.Info("plan renewed",
		slog.String("user_id", user.ID),
		slog.Int("plan_months", user.PlanMonths))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":          user.ID,
		"plan_start":  user.PlanStart,
		"plan_months": user.PlanMonths,
		"plan_expiry": plan.Expiry(user.PlanStart, user.PlanMonths),
	}))
}
