// Package stats отдаёт агрегированные счётчики для дашборда.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/unievents/unievents/internal/lib/sl"
)

// Counters описывает счётчики платформы.
type Counters struct {
	TotalUsers         int `json:"total_users"`
	TotalEvents        int `json:"total_events"`
	TotalRegistrations int `json:"total_registrations"`
}

// StatsRepository определяет методы подсчёта сущностей в хранилище.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountEvents(ctx context.Context) (int, error)
	CountRegistrations(ctx context.Context) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// StatsService собирает счётчики, кешируя результат на короткое время:
// три COUNT(*) на каждый запрос дашборда не нужны.
type StatsService struct {
	repo  StatsRepository
	cache Cache
	log   *slog.Logger
}

// NewStatsService создает новый экземпляр StatsService.
func NewStatsService(repo StatsRepository, cache Cache, log *slog.Logger) *StatsService {
	return &StatsService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

const cacheKey = "stats:counters"

// Collect возвращает счётчики пользователей, событий и регистраций.
func (s *StatsService) Collect(ctx context.Context) (*Counters, error) {
	var cached *Counters
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read stats from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	var counters Counters
	if counters.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if counters.TotalEvents, err = s.repo.CountEvents(ctx); err != nil {
		return nil, err
	}
	if counters.TotalRegistrations, err = s.repo.CountRegistrations(ctx); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, &counters, 30*time.Second); err != nil {
		s.log.Warn("failed to cache stats", sl.Err(err))
	}
	return &counters, nil
}
