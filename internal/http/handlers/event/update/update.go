// Package update реализует HTTP-обработчик частичного обновления события.
//
// Handler принимает JSON с изменяемыми полями, валидирует их и делегирует
// обновление сервису. Менять событие может только его организатор.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/http/middlewarectx"
	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// Handler обрабатывает HTTP-запросы на обновление событий.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления события.
type Service interface {
	Update(ctx context.Context, identity models.Identity, id string, req models.DummyEventUpdate) (*models.Event, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить событие
// @Description Частично обновляет событие. Доступно только организатору.
// @Tags Events
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID события (UUID)"
// @Param request body models.DummyEventUpdate true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновлённое событие"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, ID или дата"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Пользователь не организатор"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.update"

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

	var req models.DummyEventUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	event, err := h.service.Update(r.Context(), *identity, id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			log.Error("event not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
		case errors.Is(err, errs.ErrNotOrganizer):
			log.Error("user is not the organizer", slog.String("id", id))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("only the organizer can modify the event"))
		case errors.Is(err, errs.ErrInvalidInput):
			log.Error("invalid event data", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event data"))
		default:
			log.Error("failed to update event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update event"))
		}
		return
	}

	log.Info("success to update event", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"event": event,
	}))
}
