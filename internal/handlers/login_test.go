package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/internal/models"
	"petshop/internal/services"
	"petshop/internal/sessions"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody models.StatusResponse
		expectCookie bool
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Username: "testuser",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "testuser", "password123").
					Return("SESSION_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: models.Success("Login successful"),
			expectCookie: true,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("invalid request body"),
		},
		{
			name: "unknown user",
			inputBody: LoginRequest{
				Username: "nobody",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "nobody", "password123").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: models.Error("Invalid username or password"),
		},
		{
			name: "wrong password",
			inputBody: LoginRequest{
				Username: "testuser",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "testuser", "wrongpass").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: models.Error("Invalid username or password"),
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Username: "testuser",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "testuser", "password123").
					Return("", errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: models.Error("Internal server error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc, time.Hour)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody models.StatusResponse
			err := json.Unmarshal(w.Body.Bytes(), &respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)

			cookies := w.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, sessions.CookieName, cookies[0].Name)
				assert.Equal(t, "SESSION_TOKEN", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}
