// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и роль.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей. Роль переносится в JWT, но политика доступа
// к событиям опирается только на владение (см. services/event).
const (
	RoleStudent               = "student"
	RoleStaff                 = "staff"
	RoleComputerEngineering   = "computer_engineering"
	RoleMechanicalEngineering = "mechanical_engineering"
	RoleAdmin                 = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"id"`    // Уникальный идентификатор пользователя
	Name         string    `json:"name"`  // Отображаемое имя
	Email        string    `json:"email"` // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`     // Хэш пароля, наружу не отдаётся
	Role         string    `json:"role"`  // Роль пользователя
	CreatedAt    time.Time `json:"created_at"`
}

// Identity — проверенные данные владельца токена, извлекаемые
// middleware из JWT и передаваемые обработчикам через контекст.
type Identity struct {
	UID   string
	Email string
	Role  string
}

// DummyRegisterUser используется для приёма данных из JSON-запроса регистрации.
type DummyRegisterUser struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// DummyLoginUser используется для приёма данных из JSON-запроса входа.
type DummyLoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
