// Package list реализует HTTP-обработчик получения регистраций пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/unievents/unievents/internal/http/middlewarectx"
	"github.com/unievents/unievents/internal/http/response"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// Handler обрабатывает запросы на получение регистраций владельца токена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики листинга регистраций.
type Service interface {
	ListMy(ctx context.Context, userUID string) ([]*models.RegistrationWithEvent, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Мои регистрации
// @Description Возвращает регистрации владельца токена с развёрнутыми событиями, новые первыми.
// @Tags Registrations
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список регистраций"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /registrations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	regs, err := h.service.ListMy(r.Context(), identity.UID)
	if err != nil {
		log.Error("failed to list registrations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list registrations"))
		return
	}

	log.Info("success to list registrations", slog.Int("count", len(regs)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"registrations": regs,
	}))
}
