// Package test реализует HTTP-обработчик дневного пробного теста.
package test

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение пробного теста.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи теста.
type Service interface {
	DailyTest(isPaid bool) *models.TestPaper
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дневной пробный тест
// @Description Возвращает дневной пробный тест. Бесплатный уровень получает усечённый набор вопросов.
// @Tags Content
// @Produce  json
// @Success 200 {object} map[string]any "Пробный тест"
// @Security BearerAuth
// @Router /content/test [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.test"

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

	paper := h.service.DailyTest(ent.IsPaid)

	log.Info("test served", slog.Bool("is_paid", ent.IsPaid), slog.Int("locked", paper.Locked))
	render.JSON(w, r, response.OKWithData(paper))
}
