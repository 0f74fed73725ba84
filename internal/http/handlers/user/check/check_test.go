package check

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService реализует интерфейс check.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func TestCheckHandler_Email(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "email занят",
			query: "?email=alice@example.com",
			setupMock: func(m *MockService) {
				m.On("EmailExists", mock.Anything, "alice@example.com").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"exists":true`,
		},
		{
			name:  "email свободен",
			query: "?email=bob@example.com",
			setupMock: func(m *MockService) {
				m.On("EmailExists", mock.Anything, "bob@example.com").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"exists":false`,
		},
		{
			name:           "некорректный email",
			query:          "?email=not-an-email",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"field email is not a valid email"`,
		},
		{
			name:           "email не передан",
			query:          "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"field email is not a valid email"`,
		},
		{
			name:  "ошибка хранилища",
			query: "?email=alice@example.com",
			setupMock: func(m *MockService) {
				m.On("EmailExists", mock.Anything, "alice@example.com").Return(false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to check email"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/users/check-email"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Email(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

func TestCheckHandler_Username(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "username занят",
			query: "?username=alice",
			setupMock: func(m *MockService) {
				m.On("UsernameExists", mock.Anything, "alice").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"exists":true`,
		},
		{
			name:           "слишком короткий username",
			query:          "?username=ab",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"field username is not valid"`,
		},
		{
			name:  "ошибка хранилища",
			query: "?username=alice",
			setupMock: func(m *MockService) {
				m.On("UsernameExists", mock.Anything, "alice").Return(false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to check username"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/users/check-username"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Username(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
