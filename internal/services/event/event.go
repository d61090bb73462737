// Package event содержит бизнес-логику работы с событиями, включая
// политику доступа и кеширование горячих чтений.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/lib/sl"
	"github.com/unievents/unievents/internal/models"
)

// EventRepository определяет методы для работы с событиями в хранилище.
type EventRepository interface {
	// CreateEvent добавляет новое событие и возвращает запись с id.
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	// ReadEvent возвращает событие с организатором или errs.ErrEventNotFound.
	ReadEvent(ctx context.Context, id string) (*models.EventWithOrganizer, error)
	// ListEvents возвращает все события по возрастанию даты проведения.
	ListEvents(ctx context.Context) ([]*models.Event, error)
	// UpdateEvent применяет частичное обновление.
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	// DeleteEvent удаляет событие вместе с регистрациями.
	DeleteEvent(ctx context.Context, id string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// EventService реализует бизнес-логику работы с событиями.
//
// Политика изменения: менять и удалять событие может только его
// организатор. Роль из токена не участвует в проверке — admin не
// обходит владение.
type EventService struct {
	repo  EventRepository
	cache Cache
	log   *slog.Logger
}

// NewEventService создает новый экземпляр EventService.
func NewEventService(repo EventRepository, cache Cache, log *slog.Logger) *EventService {
	return &EventService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(id string) string {
	return fmt.Sprintf("event:%s", id)
}

// Create создает новое событие. Организатором безусловно становится
// владелец токена; значение организатора из тела запроса никогда
// не используется.
func (s *EventService) Create(ctx context.Context, organizerUID string, req models.DummyEvent) (*models.Event, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", errs.ErrInvalidInput, err)
	}

	event, err := s.repo.CreateEvent(ctx, models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Category:     req.Category,
		OrganizerUID: organizerUID,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("created new event", slog.String("id", event.ID))
	return event, nil
}

// List возвращает все события, отсортированные по дате по возрастанию.
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.repo.ListEvents(ctx)
}

// Read возвращает событие с развёрнутым организатором, используя кеш.
func (s *EventService) Read(ctx context.Context, id string) (*models.EventWithOrganizer, error) {
	var result *models.EventWithOrganizer
	key := cacheKey(id)
	found, err := s.cache.Get(ctx, key, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, result, time.Minute); err != nil {
		s.log.Warn("failed to cache event", slog.String("key", key), sl.Err(err))
	}
	return result, nil
}

// Update применяет частичное обновление события после проверки владения.
func (s *EventService) Update(ctx context.Context, identity models.Identity, id string, req models.DummyEventUpdate) (*models.Event, error) {
	current, err := s.repo.ReadEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.OrganizerUID != identity.UID {
		return nil, errs.ErrNotOrganizer
	}

	patch := models.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Category:    req.Category,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date: %v", errs.ErrInvalidInput, err)
		}
		patch.Date = &date
	}

	updated, err := s.repo.UpdateEvent(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey(id)), sl.Err(err))
	}
	s.log.Info("updated event", slog.String("id", id))
	return updated, nil
}

// Delete удаляет событие после проверки владения. Регистрации на событие
// удаляются каскадно на уровне хранилища.
func (s *EventService) Delete(ctx context.Context, identity models.Identity, id string) error {
	current, err := s.repo.ReadEvent(ctx, id)
	if err != nil {
		return err
	}
	if current.OrganizerUID != identity.UID {
		return errs.ErrNotOrganizer
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey(id)), sl.Err(err))
	}
	s.log.Info("deleted event", slog.String("id", id))
	return nil
}
