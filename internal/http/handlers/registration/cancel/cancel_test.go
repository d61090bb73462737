package cancel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unievents/unievents/internal/errs"
	"github.com/unievents/unievents/internal/http/middlewarectx"
	"github.com/unievents/unievents/internal/models"
)

// MockService реализует интерфейс cancel.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Cancel(ctx context.Context, userUID, registrationID string) (*models.Registration, error) {
	args := m.Called(ctx, userUID, registrationID)
	reg, _ := args.Get(0).(*models.Registration)
	return reg, args.Error(1)
}

const registrationID = "3f2d8c1a-9b7e-4d6f-8a5c-1e0b9d8c7f21"

func TestCancelHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	identity := &models.Identity{UID: "uid-1"}

	tests := []struct {
		name           string
		id             string
		identity       *models.Identity
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешная отмена регистрации",
			id:       registrationID,
			identity: identity,
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, "uid-1", registrationID).
					Return(&models.Registration{
						ID:     registrationID,
						Status: models.RegistrationCancelled,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"cancelled"`,
		},
		{
			name:           "некорректный id в url",
			id:             "abc",
			identity:       identity,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid registration id"}`,
		},
		{
			name:           "отсутствует авторизация",
			id:             registrationID,
			identity:       nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:     "регистрация не найдена",
			id:       registrationID,
			identity: identity,
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, "uid-1", registrationID).
					Return(nil, errs.ErrRegistrationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"registration not found"}`,
		},
		{
			name:     "ошибка сервиса",
			id:       registrationID,
			identity: identity,
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, "uid-1", registrationID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not cancel registration"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/registrations/"+tt.id, nil)

			if tt.identity != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.IdentityKey, tt.identity)
				req = req.WithContext(ctx)
			}

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
