package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/models"
)

// CreateEvent вставляет новое событие и возвращает запись с id и датой создания.
func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO events (title, description, date, location, capacity, category, organizer)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, registered_count, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		event.Title, event.Description, event.Date, event.Location,
		event.Capacity, event.Category, event.OrganizerUID).Scan(
		&event.ID, &event.RegisteredCount, &event.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &event, nil
}

// ReadEvent возвращает событие по id с развёрнутыми данными организатора.
func (s *Storage) ReadEvent(ctx context.Context, id string) (*models.EventWithOrganizer, error) {
	const op = "storage.ReadEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT e.id, e.title, e.description, e.date, e.location, e.capacity,
			      e.category, e.organizer, e.registered_count, e.created_at,
			      u.uid, u.name, u.email
			  FROM events e
			  JOIN users u ON e.organizer = u.uid
			  WHERE e.id = $1`
	var result models.EventWithOrganizer
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.Date,
		&result.Location, &result.Capacity, &result.Category, &result.OrganizerUID,
		&result.RegisteredCount, &result.CreatedAt,
		&result.Organizer.UID, &result.Organizer.Name, &result.Organizer.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListEvents возвращает все события, отсортированные по дате проведения
// по возрастанию, независимо от порядка создания.
func (s *Storage) ListEvents(ctx context.Context) ([]*models.Event, error) {
	const op = "storage.ListEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, date, location, capacity, category,
			      organizer, registered_count, created_at
			  FROM events
			  ORDER BY date ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Event
	for rows.Next() {
		var item models.Event
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Date,
			&item.Location, &item.Capacity, &item.Category, &item.OrganizerUID,
			&item.RegisteredCount, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateEvent применяет частичное обновление события и возвращает обновлённую запись.
// nil-поля патча оставляют текущие значения.
func (s *Storage) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	const op = "storage.UpdateEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE events
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description),
			      date = COALESCE($4, date),
			      location = COALESCE($5, location),
			      capacity = COALESCE($6, capacity),
			      category = COALESCE($7, category)
			  WHERE id = $1
			  RETURNING id, title, description, date, location, capacity, category,
			      organizer, registered_count, created_at`
	var result models.Event
	row := s.DB.QueryRowContext(ctx, query, id,
		patch.Title, patch.Description, patch.Date, patch.Location, patch.Capacity, patch.Category)
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.Date,
		&result.Location, &result.Capacity, &result.Category, &result.OrganizerUID,
		&result.RegisteredCount, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// DeleteEvent удаляет событие по id. Регистрации удаляются каскадно
// на уровне схемы, чтобы не оставлять висячих ссылок.
func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	const op = "storage.DeleteEvent"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, errs.ErrEventNotFound)
	}
	return nil
}

// CountEvents возвращает общее количество событий.
func (s *Storage) CountEvents(ctx context.Context) (int, error) {
	const op = "storage.CountEvents"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
