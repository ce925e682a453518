// Package usercreate реализует HTTP-обработчик регистрации пользователя
// через админ-консоль.
package usercreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/plan"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
	"github.com/magabrotheeeer/examprep-backend/internal/storage/repository"
)

// Индийский мобильный номер: десять цифр, первая от 6 до 9.
var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// Handler обрабатывает HTTP-запросы на создание пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания пользователя.
type Service interface {
	Create(ctx context.Context, req *models.DummyUser) (*models.User, error)
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
// @Summary Регистрация пользователя
// @Description Создает пользователя с планом, стартующим с текущего момента. Требует заголовок X-Admin-Password.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body models.DummyUser true "Данные нового пользователя"
// @Success 201 {object} map[string]any "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Номер телефона уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security AdminPassword
// @Router /admin/users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.usercreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("mobile", req.Mobile))

	// Имя из одних пробелов после обрезки становится пустым и не проходит required.
	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	if !mobileRe.MatchString(req.Mobile) {
		log.Error("invalid mobile number", slog.String("mobile", req.Mobile))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field mobile is not a valid Indian mobile number"))
		return
	}
	log.Info("all fields are validated")

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrMobileTaken) {
			log.Error("mobile already registered", slog.String("mobile", req.Mobile))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("mobile number already registered"))
			return
		}
		log.Error("failed to create user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create user"))
		return
	}

	log.Info("user created", slog.String("user_id", user.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":          user.ID,
		"mobile":      user.Mobile,
		"email":       user.Email,
		"name":        user.Name,
		"plan_start":  user.PlanStart,
		"plan_months": user.PlanMonths,
		"plan_expiry": plan.Expiry(user.PlanStart, user.PlanMonths),
	}))
}
