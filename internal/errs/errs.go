// Package errs определяет доменные ошибки сервиса.
// Хранилище и сервисы возвращают эти sentinel-ошибки (обёрнутые через %w),
// а HTTP-обработчики сопоставляют их со статус-кодами через errors.Is.
package errs

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Неизвестный email и неверный пароль неразличимы для клиента.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken возвращается при попытке регистрации с занятым email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound возвращается, когда пользователь не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound возвращается, когда событие не найдено.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidInput возвращается при некорректных данных запроса,
	// прошедших структурную валидацию (например, непарсящаяся дата).
	// Обработчики отдают его клиенту как 400, в отличие от
	// внутренних ошибок, которые остаются 500.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotOrganizer возвращается, когда аутентифицированный пользователь
	// пытается изменить или удалить чужое событие.
	ErrNotOrganizer = errors.New("only the organizer can modify this event")

	// ErrEventFull возвращается, когда количество регистраций (в любом
	// статусе) достигло объявленной вместимости события.
	ErrEventFull = errors.New("event is full")

	// ErrAlreadyRegistered возвращается при повторной регистрации на событие.
	// Существующая запись блокирует новую независимо от её статуса.
	ErrAlreadyRegistered = errors.New("already registered for this event")

	// ErrRegistrationNotFound возвращается, когда регистрация не найдена
	// или принадлежит другому пользователю.
	ErrRegistrationNotFound = errors.New("registration not found")
)
