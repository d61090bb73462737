package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, identity models.Identity, id string, req models.DummyEventUpdate) (*models.Event, error) {
	args := m.Called(ctx, identity, id, req)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

const eventID = "7b9a0b3e-4a4f-4e2e-9f5d-0c8a6a2b1d10"

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	newTitle := "Renamed"
	validBody := models.DummyEventUpdate{Title: &newTitle}
	owner := &models.Identity{UID: "uid-owner"}

	tests := []struct {
		name           string
		url            string
		requestBody    interface{}
		identity       *models.Identity
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление события",
			url:         "/events/" + eventID,
			requestBody: validBody,
			identity:    owner,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, *owner, eventID, mock.AnythingOfType("models.DummyEventUpdate")).
					Return(&models.Event{ID: eventID, Title: "Renamed"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Renamed"`,
		},
		{
			name:           "некорректный id в url",
			url:            "/events/abc",
			requestBody:    validBody,
			identity:       owner,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id"}`,
		},
		{
			name:           "некорректный JSON",
			url:            "/events/" + eventID,
			requestBody:    "not a json",
			identity:       owner,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "отсутствует авторизация",
			url:            "/events/" + eventID,
			requestBody:    validBody,
			identity:       nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "не организатор",
			url:         "/events/" + eventID,
			requestBody: validBody,
			identity:    &models.Identity{UID: "uid-stranger"},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, models.Identity{UID: "uid-stranger"}, eventID, mock.Anything).
					Return(nil, errs.ErrNotOrganizer)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"only the organizer can modify the event"}`,
		},
		{
			name:        "событие не найдено",
			url:         "/events/" + eventID,
			requestBody: validBody,
			identity:    owner,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, *owner, eventID, mock.Anything).
					Return(nil, errs.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "непарсящаяся дата",
			url:         "/events/" + eventID,
			requestBody: validBody,
			identity:    owner,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, *owner, eventID, mock.Anything).
					Return(nil, fmt.Errorf("%w: invalid date", errs.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event data"}`,
		},
		{
			name:        "ошибка сервиса",
			url:         "/events/" + eventID,
			requestBody: validBody,
			identity:    owner,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, *owner, eventID, mock.Anything).
					Return(nil, errors.New("pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not update event"}`,
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

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			if tt.identity != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.IdentityKey, tt.identity)
				req = req.WithContext(ctx)
			}

			// Устанавливаем URL параметр id для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.url[len("/events/"):])
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
