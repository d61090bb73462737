// Package read реализует HTTP-обработчик получения события по ID.
//
// Handler извлекает ID из URL-параметров, проверяет, что это валидный UUID,
// и возвращает событие с развёрнутыми данными организатора.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// Handler обрабатывает запросы на получение события по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения события.
type Service interface {
	Read(ctx context.Context, id string) (*models.EventWithOrganizer, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить событие по ID
// @Description Возвращает событие с данными организатора.
// @Tags Events
// @Produce  json
// @Param id path string true "ID события (UUID)"
// @Success 200 {object} map[string]any "Событие"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid event id"))
		return
	}

	event, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrEventNotFound) {
			log.Error("event not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}
		log.Error("failed to read event", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read event"))
		return
	}

	log.Info("success to read event", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"event": event,
	}))
}
