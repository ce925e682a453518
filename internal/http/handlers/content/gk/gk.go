// Package gk реализует HTTP-обработчик дневного дайджеста общих знаний.
package gk

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение дайджеста.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи дайджеста.
type Service interface {
	DailyGK(isPaid bool) *models.GKDigest
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дневной дайджест общих знаний
// @Description Возвращает дневной дайджест. Каждый раздел усечён до лимита бесплатного уровня.
// @Tags Content
// @Produce  json
// @Success 200 {object} map[string]any "Дайджест общих знаний"
// @Security BearerAuth
// @Router /content/gk [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.gk"

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

	digest := h.service.DailyGK(ent.IsPaid)

	log.Info("gk digest served", slog.Bool("is_paid", ent.IsPaid), slog.Int("locked", digest.Locked))
	render.JSON(w, r, response.OKWithData(digest))
}
