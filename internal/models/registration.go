// Package models содержит доменную модель регистрации пользователя на событие.
package models

import "time"

// Статусы регистрации. Поток допуска создаёт записи сразу в статусе
// confirmed; pending сохранён в перечислении и в CHECK-ограничении БД
// на случай появления шага подтверждения.
const (
	RegistrationPending   = "pending"
	RegistrationConfirmed = "confirmed"
	RegistrationCancelled = "cancelled"
)

// Registration — связь пользователя и события со статусом.
// Пара (user, event) уникальна: у пользователя не может быть больше
// одной записи регистрации на событие.
type Registration struct {
	ID        string    `json:"id"`
	UserUID   string    `json:"user"`
	EventID   string    `json:"event"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationWithEvent — регистрация с развёрнутым событием,
// отдаётся при листинге регистраций пользователя.
type RegistrationWithEvent struct {
	Registration
	Event Event `json:"event_info"`
}

// DummyRegistration используется для приёма данных из JSON-запроса на регистрацию.
type DummyRegistration struct {
	EventID string `json:"eventId" validate:"required,uuid"`
}
