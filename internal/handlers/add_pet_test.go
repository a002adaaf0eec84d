package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"petshop/internal/models"
	"petshop/internal/services"
)

func ptr[T any](v T) *T { return &v }

func TestAddPetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPetAdder(ctrl)

	validBody := AddPetRequest{
		Name:        ptr("Buddy"),
		Age:         ptr(3),
		Breed:       ptr("Golden Retriever"),
		Weight:      ptr(30.0),
		KidFriendly: ptr(true),
		Price:       ptr(500.0),
	}
	validFields := models.NewPetFields{
		Name:        "Buddy",
		Age:         3,
		Breed:       "Golden Retriever",
		Weight:      30,
		KidFriendly: true,
		Price:       500,
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody models.StatusResponse
	}{
		{
			name:      "success",
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					AddPet(gomock.Any(), validFields, gomock.Any()).
					Return(int64(7), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: models.Success("Pet added successfully with id 7"),
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("invalid request body"),
		},
		{
			name: "missing name",
			inputBody: AddPetRequest{
				Age:         ptr(3),
				Breed:       ptr("Golden Retriever"),
				Weight:      ptr(30.0),
				KidFriendly: ptr(true),
				Price:       ptr(500.0),
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("name is required"),
		},
		{
			name: "missing kid_friendly",
			inputBody: AddPetRequest{
				Name:   ptr("Buddy"),
				Age:    ptr(3),
				Breed:  ptr("Golden Retriever"),
				Weight: ptr(30.0),
				Price:  ptr(500.0),
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("kid_friendly is required"),
		},
		{
			name:      "service rejects fields",
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					AddPet(gomock.Any(), validFields, gomock.Any()).
					Return(int64(0), fmt.Errorf("%w: age must be positive", services.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: models.Error("validation failed: age must be positive"),
		},
		{
			name:      "internal error",
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					AddPet(gomock.Any(), validFields, gomock.Any()).
					Return(int64(0), errors.New("database error"))
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

			req := httptest.NewRequest(http.MethodPost, "/pets", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewAddPetHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody models.StatusResponse
			err := json.Unmarshal(w.Body.Bytes(), &respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
