// Package qna реализует HTTP-обработчик дневного набора вопросов по предмету.
//
// Бесплатные пользователи получают усечённый набор с числом скрытых
// вопросов в поле locked, платные видят весь набор.
package qna

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/lib/sl"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
	services "github.com/magabrotheeeer/examprep-backend/internal/services/content"
)

// Handler обрабатывает HTTP-запросы на получение вопросов по предмету.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи вопросов.
type Service interface {
	DailyQNA(subject string, isPaid bool) (*models.QNASet, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дневные вопросы по предмету
// @Description Возвращает дневной набор вопросов. Бесплатный уровень получает усечённый набор.
// @Tags Content
// @Produce  json
// @Param subject path string true "Слаг предмета (general-studies, arithmetic, reasoning, english)"
// @Success 200 {object} map[string]any "Набор вопросов"
// @Failure 404 {object} response.ErrorResponse "Неизвестный предмет"
// @Security BearerAuth
// @Router /content/qna/{subject} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.qna"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ent, ok := middlewarectx.EntitlementFromContext(r.Context())
	if !ok {
		log.Error("entitlement missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	subject := chi.URLParam(r, "subject")
	set, err := h.service.DailyQNA(subject, ent.IsPaid)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSubject) {
			log.Error("unknown subject", slog.String("subject", subject))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown subject"))
			return
		}
		log.Error("failed to load questions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load questions"))
		return
	}

	log.Info("questions served",
		slog.String("subject", subject),
		slog.Bool("is_paid", ent.IsPaid),
		slog.Int("locked", set.Locked))
	render.JSON(w, r, response.OKWithData(set))
}
