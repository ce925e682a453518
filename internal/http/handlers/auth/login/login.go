// Package login реализует HTTP-обработчик для входа пользователей.
//
// В нём определяется структура Request для входных данных, выполняется
// декодирование JSON, проверка и валидация полей, а также делегирование
// операции входа сервису аутентификации. При успешном входе возвращается
// JSON с JWT и снимком прав доступа; в случае ошибок формируются
// соответствующие HTTP-ответы.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	services "github.com/magabrotheeeer/examprep-backend/internal/services/auth"
)

// Индийский мобильный номер: десять цифр, первая от 6 до 9.
// Та же проверка, что и при регистрации пользователя.
var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// Request — структура входных данных для входа.
//
// Mobile — десятизначный номер телефона, Email — почта пользователя.
// Пара проверяется вместе: какое из полей не совпало, наружу не сообщается.
type Request struct {
	Mobile string `json:"mobile" validate:"required,numeric,len=10"`
	Email  string `json:"email" validate:"required,email"`
}

// Handler обрабатывает HTTP-запросы для входа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, mobile, email string) (*services.LoginResult, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
//
// Инициализирует валидатор для проверки структур.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Аутентифицирует пользователя по номеру телефона и почте. Возвращает JWT и снимок прав доступа.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} map[string]any "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("mobile", req.Mobile))

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

	res, err := h.service.Login(r.Context(), req.Mobile, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid mobile or email"))
			return
		}
		log.Error("login unavailable", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("service temporarily unavailable, try again"))
		return
	}

	log.Info("login success", slog.String("mobile", req.Mobile))

	data := map[string]any{
		"token": res.Token,
		"user": map[string]any{
			"id":     res.User.ID,
			"name":   res.User.Name,
			"mobile": res.User.Mobile,
			"email":  res.User.Email,
		},
		"is_paid":     res.Entitlement.IsPaid,
		"plan_expiry": res.Entitlement.PlanExpiry,
		"days_left":   res.Entitlement.DaysLeft,
	}
	if res.Stale {
		render.JSON(w, r, response.OKStale(data))
		return
	}
	render.JSON(w, r, response.OKWithData(data))
}
