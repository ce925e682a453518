// Package notifications реализует HTTP-обработчик досок объявлений:
// расписания экзаменов, результаты и срочные уведомления.
package notifications

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/examprep-backend/internal/http/response"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение объявлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи объявлений.
type Service interface {
	Notices() []models.Notice
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Доска объявлений
// @Description Возвращает активные объявления об экзаменах, результатах и срочных новостях. Доступно всем авторизованным пользователям.
// @Tags Content
// @Produce  json
// @Success 200 {object} map[string]any "Список объявлений"
// @Security BearerAuth
// @Router /content/notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.notifications"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	notices := h.service.Notices()

	log.Info("notices served", slog.Int("count", len(notices)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"total":   len(notices),
		"notices": notices,
	}))
}
