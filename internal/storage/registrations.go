package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/models"
)

// RegistrationExists сообщает, есть ли у пользователя регистрация на событие
// в любом статусе. Используется сервисом как ранний отказ; истиной
// в последней инстанции остаётся уникальный индекс в CreateRegistration.
func (s *Storage) RegistrationExists(ctx context.Context, userUID, eventID string) (bool, error) {
	const op = "storage.RegistrationExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS(SELECT 1 FROM registrations WHERE user_uid = $1 AND event_id = $2)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, userUID, eventID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreateRegistration допускает пользователя на событие и возвращает созданную
// регистрацию в статусе confirmed.
//
// Проверка вместимости и вставка выполняются в одной транзакции: условный
// инкремент registered_count берёт блокировку строки события, поэтому два
// конкурирующих запроса на последнее место сериализуются и лишний не проходит.
// Нарушение уникального индекса (user_uid, event_id) откатывает транзакцию
// вместе с инкрементом и транслируется в errs.ErrAlreadyRegistered.
func (s *Storage) CreateRegistration(ctx context.Context, userUID, eventID string) (*models.Registration, error) {
	const op = "storage.CreateRegistration"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, `
		UPDATE events
		SET registered_count = registered_count + 1
		WHERE id = $1
		  AND (capacity IS NULL OR registered_count < capacity)`, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !exists {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, errs.ErrEventFull)
	}

	reg := models.Registration{
		UserUID: userUID,
		EventID: eventID,
		Status:  models.RegistrationConfirmed,
	}
	row := tx.QueryRowContext(ctx, `
		INSERT INTO registrations (user_uid, event_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, userUID, eventID, reg.Status)
	if err := row.Scan(&reg.ID, &reg.CreatedAt); err != nil {
		if isUniqueViolation(err, "registrations_user_uid_event_id_key") {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrAlreadyRegistered)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &reg, nil
}

// ListRegistrationsByUser возвращает все регистрации пользователя
// с развёрнутыми событиями, новые первыми. Пагинации нет.
func (s *Storage) ListRegistrationsByUser(ctx context.Context, userUID string) ([]*models.RegistrationWithEvent, error) {
	const op = "storage.ListRegistrationsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.user_uid, r.event_id, r.status, r.created_at,
			      e.id, e.title, e.description, e.date, e.location, e.capacity,
			      e.category, e.organizer, e.registered_count, e.created_at
			  FROM registrations r
			  JOIN events e ON r.event_id = e.id
			  WHERE r.user_uid = $1
			  ORDER BY r.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RegistrationWithEvent
	for rows.Next() {
		var item models.RegistrationWithEvent
		if err := rows.Scan(&item.ID, &item.UserUID, &item.EventID, &item.Status, &item.CreatedAt,
			&item.Event.ID, &item.Event.Title, &item.Event.Description, &item.Event.Date,
			&item.Event.Location, &item.Event.Capacity, &item.Event.Category,
			&item.Event.OrganizerUID, &item.Event.RegisteredCount, &item.Event.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CancelRegistration переводит регистрацию пользователя в статус cancelled.
// Запись не удаляется и продолжает занимать место в счётчике вместимости.
func (s *Storage) CancelRegistration(ctx context.Context, userUID, registrationID string) (*models.Registration, error) {
	const op = "storage.CancelRegistration"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE registrations
			  SET status = $3
			  WHERE id = $1 AND user_uid = $2
			  RETURNING id, user_uid, event_id, status, created_at`
	var reg models.Registration
	row := s.DB.QueryRowContext(ctx, query, registrationID, userUID, models.RegistrationCancelled)
	if err := row.Scan(&reg.ID, &reg.UserUID, &reg.EventID, &reg.Status, &reg.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrRegistrationNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &reg, nil
}

// CountRegistrations возвращает общее количество регистраций.
func (s *Storage) CountRegistrations(ctx context.Context) (int, error) {
	const op = "storage.CountRegistrations"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
