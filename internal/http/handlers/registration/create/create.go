// Package create реализует HTTP-обработчик регистрации на событие.
//
// Handler принимает JSON с ID события, валидирует его и делегирует допуск
// сервису регистраций. Повторная регистрация и исчерпанная вместимость
// дают 400, отсутствующее событие — 404.
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

// Handler обрабатывает HTTP-запросы на регистрацию на события.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики допуска на событие.
type Service interface {
	Register(ctx context.Context, userUID, eventID string) (*models.Registration, error)
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
// @Summary Зарегистрироваться на событие
// @Description Создает подтверждённую регистрацию владельца токена на событие.
// @Tags Registrations
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyRegistration true "ID события"
// @Success 201 {object} map[string]any "Регистрация создана"
// @Failure 400 {object} response.ErrorResponse "Повторная регистрация или нет мест"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /registrations [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRegistration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("event_id", req.EventID))

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

	reg, err := h.service.Register(r.Context(), identity.UID, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			log.Error("event not found", slog.String("event_id", req.EventID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
		case errors.Is(err, errs.ErrAlreadyRegistered):
			log.Error("already registered", slog.String("event_id", req.EventID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("already registered for this event"))
		case errors.Is(err, errs.ErrEventFull):
			log.Error("event is full", slog.String("event_id", req.EventID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("event is full"))
		default:
			log.Error("failed to register", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not register for event"))
		}
		return
	}

	log.Info("success to register", slog.String("registration_id", reg.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"registration": reg,
	}))
}
