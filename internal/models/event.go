// Package models содержит доменные структуры событий,
// а также вспомогательные типы для работы с данными из JSON-запросов.
package models

import "time"

// Event представляет собой событие университета.
// Capacity может быть nil — это означает отсутствие ограничения по количеству мест.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`     // Дата и время проведения
	Location        string    `json:"location"` // Место проведения
	Capacity        *int      `json:"capacity"` // Максимум участников, nil — без лимита
	Category        string    `json:"category"`
	OrganizerUID    string    `json:"organizer"`        // Владелец события (ссылка на User)
	RegisteredCount int       `json:"registered_count"` // Счётчик занятых мест
	CreatedAt       time.Time `json:"created_at"`
}

// Organizer — сокращённое представление организатора,
// отдаваемое при чтении одного события.
type Organizer struct {
	UID   string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventWithOrganizer — событие с развёрнутыми данными организатора.
type EventWithOrganizer struct {
	Event
	Organizer Organizer `json:"organizer_info"`
}

// DummyEvent используется для приёма данных из JSON-запроса на создание события.
// Дата приходит строкой в формате RFC3339 и парсится в сервисе.
// Поле организатора в запросе отсутствует: организатором всегда
// становится проверенный владелец токена.
type DummyEvent struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"max=300"`
	Capacity    *int   `json:"capacity" validate:"omitempty,gt=0"`
	Category    string `json:"category" validate:"max=100"`
}

// EventPatch — частичное обновление события с уже распарсенной датой,
// передаётся из сервиса в хранилище. nil означает "не менять".
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
	Category    *string
}

// DummyEventUpdate используется для частичного обновления события.
// Поля-указатели: nil означает "не менять".
type DummyEventUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Date        *string `json:"date"`
	Location    *string `json:"location" validate:"omitempty,max=300"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gt=0"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
}
