// Package stats реализует HTTP-обработчик счётчиков платформы.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	statsservice "github.com/unievents/unievents/internal/services/stats"
)

// Handler обрабатывает запросы на получение агрегированных счётчиков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сбора статистики.
type Service interface {
	Collect(ctx context.Context) (*statsservice.Counters, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика платформы
// @Description Возвращает количество пользователей, событий и регистраций.
// @Tags Stats
// @Produce  json
// @Success 200 {object} map[string]any "Счётчики"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	counters, err := h.service.Collect(r.Context())
	if err != nil {
		log.Error("failed to collect stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect stats"))
		return
	}

	render.JSON(w, r, response.OKWithData(counters))
}
