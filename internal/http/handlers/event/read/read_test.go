package read

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
	"github.com/unievents/unievents/internal/models"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id string) (*models.EventWithOrganizer, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.EventWithOrganizer)
	return event, args.Error(1)
}

const eventID = "7b9a0b3e-4a4f-4e2e-9f5d-0c8a6a2b1d10"

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение события",
			id:   eventID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, eventID).
					Return(&models.EventWithOrganizer{
						Event: models.Event{ID: eventID, Title: "Go Meetup"},
						Organizer: models.Organizer{
							UID:   "uid-organizer",
							Name:  "Organizer",
							Email: "org@example.com",
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"organizer_info"`,
		},
		{
			name:           "некорректный id в url",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id"}`,
		},
		{
			name: "событие не найдено",
			id:   eventID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, eventID).
					Return(nil, errs.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name: "ошибка сервиса",
			id:   eventID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, eventID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read event"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.id, nil)

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
