package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/models"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req models.DummyRegisterUser) (string, *models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(1).(*models.User)
	return args.String(0), user, args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validReq := models.DummyRegisterUser{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "secret123",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная регистрация",
			requestBody: validReq,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validReq).
					Return("token-1", &models.User{
						UID:   "uid-1",
						Email: validReq.Email,
						Role:  models.RoleStudent,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"token":"token-1"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка валидации",
			requestBody: models.DummyRegisterUser{
				Name:     "T",
				Email:    "user@example.com",
				Password: "123",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is too short, field Password is too short`,
		},
		{
			name:        "занятый email",
			requestBody: validReq,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validReq).
					Return("", nil, errs.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"email already taken"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: validReq,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validReq).
					Return("", nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
