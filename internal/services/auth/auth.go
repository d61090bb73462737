// Package auth содержит бизнес-логику регистрации, входа и проверки JWT.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/lib/jwt"
	"github.com/unievents/unievents/internal/lib/password"
	"github.com/unievents/unievents/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает запись с uid.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или errs.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля и ролью student
// и сразу выдает токен. Занятый email транслируется как errs.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegisterUser) (string, *models.User, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", nil, err
	}
	user, err := s.users.RegisterUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.RoleStudent, // дефолтная роль при регистрации
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Неизвестный email и неверный пароль дают один и тот же
// errs.ErrInvalidCredentials, чтобы не раскрывать существование аккаунта.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken проверяет JWT и возвращает данные владельца токена.
func (s *AuthService) VerifyToken(_ context.Context, token string) (*models.Identity, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.Identity{
		UID:   claims.UserUID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// seedAccount — фиксированная административная учётная запись.
type seedAccount struct {
	name  string
	email string
	role  string
}

var seedAccounts = []seedAccount{
	{name: "Admin", email: "blerona.tmava@umib.net", role: models.RoleComputerEngineering},
	{name: "Admin", email: "habib.tmava@umib.net", role: models.RoleMechanicalEngineering},
	{name: "SuperAdmin", email: "bleronatmava12@gmail.com", role: models.RoleStaff},
}

// SeedAdmins идемпотентно создаёт фиксированные административные аккаунты:
// уже существующие email пропускаются. Пароль берётся из конфигурации;
// при пустом пароле посев не выполняется.
func (s *AuthService) SeedAdmins(ctx context.Context, rawPassword string) error {
	const op = "auth.SeedAdmins"
	if rawPassword == "" {
		s.log.Info("admin seed password is empty, skipping seeding")
		return nil
	}

	for _, acc := range seedAccounts {
		_, err := s.users.GetUserByEmail(ctx, acc.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrUserNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}

		hashed, err := password.GetHash(rawPassword)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := s.users.RegisterUser(ctx, models.User{
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: hashed,
			Role:         acc.role,
		}); err != nil {
			// Конкурирующий запуск мог успеть создать аккаунт первым.
			if errors.Is(err, errs.ErrEmailTaken) {
				continue
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("seeded admin account", slog.String("email", acc.email))
	}
	return nil
}
