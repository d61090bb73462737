// Package remove реализует HTTP-обработчик удаления события.
//
// Удалять событие может только его организатор. Регистрации на событие
// удаляются каскадно на уровне хранилища.
package remove

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
	"github.com/unievents/unievents/internal/http/middlewarectx"
	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// Handler обрабатывает HTTP-запросы на удаление событий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления события.
type Service interface {
	Delete(ctx context.Context, identity models.Identity, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить событие
// @Description Удаляет событие вместе с регистрациями. Доступно только организатору.
// @Tags Events
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID события (UUID)"
// @Success 200 {object} map[string]any "Событие удалено"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Пользователь не организатор"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.remove"

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

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Delete(r.Context(), *identity, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			log.Error("event not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
		case errors.Is(err, errs.ErrNotOrganizer):
			log.Error("user is not the organizer", slog.String("id", id))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("only the organizer can delete the event"))
		default:
			log.Error("failed to delete event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not delete event"))
		}
		return
	}

	log.Info("success to delete event", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "event deleted successfully",
	}))
}
