// Package list реализует HTTP-обработчик получения списка всех событий.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// Handler обрабатывает запросы на получение списка событий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики листинга событий.
type Service interface {
	List(ctx context.Context) ([]*models.Event, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список событий
// @Description Возвращает все события, отсортированные по дате проведения.
// @Tags Events
// @Produce  json
// @Success 200 {object} map[string]any "Список событий"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	events, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list events"))
		return
	}

	log.Info("success to list events", slog.Int("count", len(events)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"events": events,
	}))
}
