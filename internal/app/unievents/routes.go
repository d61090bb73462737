// Package unievents предоставляет маршруты для основного приложения.
package unievents

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"

	authlogin "github.com/unievents/unievents/internal/http/handlers/auth/login"
	authregister "github.com/unievents/unievents/internal/http/handlers/auth/register"
	eventcreate "github.com/unievents/unievents/internal/http/handlers/event/create"
	eventlist "github.com/unievents/unievents/internal/http/handlers/event/list"
	eventread "github.com/unievents/unievents/internal/http/handlers/event/read"
	eventremove "github.com/unievents/unievents/internal/http/handlers/event/remove"
	eventupdate "github.com/unievents/unievents/internal/http/handlers/event/update"
	"github.com/unievents/unievents/internal/http/handlers/health"
	regcancel "github.com/unievents/unievents/internal/http/handlers/registration/cancel"
	regcreate "github.com/unievents/unievents/internal/http/handlers/registration/create"
	reglist "github.com/unievents/unievents/internal/http/handlers/registration/list"
	statshandler "github.com/unievents/unievents/internal/http/handlers/stats"
	"github.com/unievents/unievents/internal/http/middlewarectx"
	authservice "github.com/unievents/unievents/internal/services/auth"
	eventservice "github.com/unievents/unievents/internal/services/event"
	registrationservice "github.com/unievents/unievents/internal/services/registration"
	statsservice "github.com/unievents/unievents/internal/services/stats"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	eventService *eventservice.EventService,
	registrationService *registrationservice.RegistrationService,
	statsService *statsservice.StatsService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(rate.Limit(50), 100)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", authregister.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", authlogin.New(logger, authService).ServeHTTP)
		r.Get("/events", eventlist.New(logger, eventService).ServeHTTP)
		r.Get("/events/{id}", eventread.New(logger, eventService).ServeHTTP)
		r.Get("/stats", statshandler.New(logger, statsService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.Post("/events", eventcreate.New(logger, eventService).ServeHTTP)
			r.Put("/events/{id}", eventupdate.New(logger, eventService).ServeHTTP)
			r.Delete("/events/{id}", eventremove.New(logger, eventService).ServeHTTP)
			r.Post("/registrations", regcreate.New(logger, registrationService).ServeHTTP)
			r.Get("/registrations", reglist.New(logger, registrationService).ServeHTTP)
			r.Delete("/registrations/{id}", regcancel.New(logger, registrationService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
