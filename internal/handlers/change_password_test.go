package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"petshop/internal/models"
	"petshop/internal/services"
)

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordChanger(ctrl)
	mockExtractor := NewMockTokenExtractor(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody models.StatusResponse
	}{
		{
			name:      "success",
			inputBody: ChangePasswordRequest{NewPassword: "hunter2"},
			mockSetup: func() {
				mockExtractor.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("SESSION_TOKEN", nil)
				mockSvc.EXPECT().
					ChangePassword(gomock.Any(), "SESSION_TOKEN", "hunter2").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: models.Success("Password updated successfully"),
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("invalid request body"),
		},
		{
			name:         "missing new password",
			inputBody:    ChangePasswordRequest{},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("new_password is required"),
		},
		{
			name:      "no cookie",
			inputBody: ChangePasswordRequest{NewPassword: "hunter2"},
			mockSetup: func() {
				mockExtractor.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", http.ErrNoCookie)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: models.Error("Unauthorized"),
		},
		{
			name:      "revoked session",
			inputBody: ChangePasswordRequest{NewPassword: "hunter2"},
			mockSetup: func() {
				mockExtractor.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("SESSION_TOKEN", nil)
				mockSvc.EXPECT().
					ChangePassword(gomock.Any(), "SESSION_TOKEN", "hunter2").
					Return(services.ErrInvalidSession)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: models.Error("Unauthorized"),
		},
		{
			name:      "internal error",
			inputBody: ChangePasswordRequest{NewPassword: "hunter2"},
			mockSetup: func() {
				mockExtractor.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("SESSION_TOKEN", nil)
				mockSvc.EXPECT().
					ChangePassword(gomock.Any(), "SESSION_TOKEN", "hunter2").
					Return(errors.New("database error"))
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

			req := httptest.NewRequest(http.MethodPost, "/change-password", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewChangePasswordHandler(mockSvc, mockExtractor)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody models.StatusResponse
			err := json.Unmarshal(w.Body.Bytes(), &respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
