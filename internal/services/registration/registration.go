// Package registration содержит логику допуска на события: проверку
// повторной регистрации, контроль вместимости и листинг регистраций.
package registration

import (
	"context"
	"errors"
	"log/slog"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/metrics"
	"github.com/unievents/unievents/internal/models"
)

// RegistrationRepository определяет методы для работы с регистрациями в хранилище.
type RegistrationRepository interface {
	// RegistrationExists сообщает, есть ли запись (user, event) в любом статусе.
	RegistrationExists(ctx context.Context, userUID, eventID string) (bool, error)
	// CreateRegistration атомарно допускает пользователя на событие.
	CreateRegistration(ctx context.Context, userUID, eventID string) (*models.Registration, error)
	// ListRegistrationsByUser возвращает регистрации пользователя, новые первыми.
	ListRegistrationsByUser(ctx context.Context, userUID string) ([]*models.RegistrationWithEvent, error)
	// CancelRegistration переводит регистрацию пользователя в статус cancelled.
	CancelRegistration(ctx context.Context, userUID, registrationID string) (*models.Registration, error)
}

// RegistrationService реализует контроль допуска на события.
type RegistrationService struct {
	repo RegistrationRepository
	log  *slog.Logger
}

// NewRegistrationService создает новый экземпляр RegistrationService.
func NewRegistrationService(repo RegistrationRepository, log *slog.Logger) *RegistrationService {
	return &RegistrationService{
		repo: repo,
		log:  log,
	}
}

// Register допускает пользователя на событие и возвращает регистрацию
// в статусе confirmed.
//
// Предварительная проверка дубликата — это только ранний отказ:
// гарантию даёт уникальный индекс (user, event) в хранилище, и оба пути
// отказа дают один и тот же errs.ErrAlreadyRegistered. Проверка
// вместимости выполняется хранилищем атомарно, поэтому конкурирующие
// запросы на последнее место не переполняют событие.
func (s *RegistrationService) Register(ctx context.Context, userUID, eventID string) (*models.Registration, error) {
	exists, err := s.repo.RegistrationExists(ctx, userUID, eventID)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.RegistrationsRejectedDuplicate.Inc()
		return nil, errs.ErrAlreadyRegistered
	}

	reg, err := s.repo.CreateRegistration(ctx, userUID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventFull):
			metrics.RegistrationsRejectedFull.Inc()
		case errors.Is(err, errs.ErrAlreadyRegistered):
			metrics.RegistrationsRejectedDuplicate.Inc()
		}
		return nil, err
	}

	metrics.RegistrationsAdmitted.Inc()
	s.log.Info("registration admitted",
		slog.String("registration_id", reg.ID),
		slog.String("event_id", eventID))
	return reg, nil
}

// ListMy возвращает все регистрации пользователя с развёрнутыми событиями,
// новые первыми. Пагинации нет: полный результат за один вызов.
func (s *RegistrationService) ListMy(ctx context.Context, userUID string) ([]*models.RegistrationWithEvent, error) {
	return s.repo.ListRegistrationsByUser(ctx, userUID)
}

// Cancel переводит регистрацию владельца в статус cancelled.
// Запись не удаляется и продолжает занимать место события.
func (s *RegistrationService) Cancel(ctx context.Context, userUID, registrationID string) (*models.Registration, error) {
	reg, err := s.repo.CancelRegistration(ctx, userUID, registrationID)
	if err != nil {
		return nil, err
	}
	s.log.Info("registration cancelled", slog.String("registration_id", registrationID))
	return reg, nil
}
