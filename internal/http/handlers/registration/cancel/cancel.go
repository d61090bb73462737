// Package cancel реализует HTTP-обработчик отмены регистрации.
//
// Отмена — переход статуса в cancelled: запись не удаляется и продолжает
// занимать место события. Отменить можно только собственную регистрацию.
package cancel

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

// Handler обрабатывает HTTP-запросы на отмену регистраций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отмены регистрации.
type Service interface {
	Cancel(ctx context.Context, userUID, registrationID string) (*models.Registration, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить регистрацию
// @Description Переводит собственную регистрацию в статус cancelled.
// @Tags Registrations
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID регистрации (UUID)"
// @Success 200 {object} map[string]any "Отменённая регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Регистрация не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /registrations/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.cancel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid registration id"))
		return
	}

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	reg, err := h.service.Cancel(r.Context(), identity.UID, id)
	if err != nil {
		if errors.Is(err, errs.ErrRegistrationNotFound) {
			log.Error("registration not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("registration not found"))
			return
		}
		log.Error("failed to cancel registration", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not cancel registration"))
		return
	}

	log.Info("success to cancel registration", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"registration": reg,
	}))
}
