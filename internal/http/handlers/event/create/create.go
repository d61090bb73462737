// Package create реализует HTTP-обработчик создания событий.
//
// Handler принимает JSON с данными события, валидирует их, извлекает
// личность организатора из контекста и делегирует создание сервису.
// Организатором всегда становится владелец токена.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/http/middlewarectx"
	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// Handler обрабатывает HTTP-запросы на создание событий.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания события.
type Service interface {
	Create(ctx context.Context, organizerUID string, req models.DummyEvent) (*models.Event, error)
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
// @Summary Создать новое событие
// @Description Создает событие от имени владельца токена. Возвращает созданное событие.
// @Tags Events
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyEvent true "Данные нового события"
// @Success 201 {object} map[string]any "Событие создано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или дата"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании события"
// @Router /events [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyEvent
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

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

	event, err := h.service.Create(r.Context(), identity.UID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			log.Error("invalid event data", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event data"))
		default:
			log.Error("failed to create event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create event"))
		}
		return
	}

	log.Info("success to create event", slog.String("id", event.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"event": event,
	}))
}
