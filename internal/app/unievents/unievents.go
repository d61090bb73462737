// Package unievents собирает приложение: хранилище, миграции, кеш,
// сервисы и HTTP-сервер с graceful shutdown.
package unievents

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/unievents/unievents/internal/cache"
	"github.com/unievents/unievents/internal/config"
	"github.com/unievents/unievents/internal/lib/jwt"
	"github.com/unievents/unievents/internal/migrations"
	authservice "github.com/unievents/unievents/internal/services/auth"
	eventservice "github.com/unievents/unievents/internal/services/event"
	registrationservice "github.com/unievents/unievents/internal/services/registration"
	statsservice "github.com/unievents/unievents/internal/services/stats"
	"github.com/unievents/unievents/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker, logger)
	eventService := eventservice.NewEventService(db, cacheRedis, logger)
	registrationService := registrationservice.NewRegistrationService(db, logger)
	statsService := statsservice.NewStatsService(db, cacheRedis, logger)

	if err := authService.SeedAdmins(ctx, cfg.AdminSeedPassword); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, eventService, registrationService, statsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.cache.Close(); cerr != nil {
			a.logger.Error("failed to close cache", slog.Any("err", cerr))
		}
		if derr := a.db.Close(); derr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", derr))
		}
		return err
	}
}
