package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/services"
)

// UserCreator defines the interface that the registration service must implement.
type UserCreator interface {
	Register(ctx context.Context, username, password string) error
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// example: testuser
	Username string `json:"username"`

	// Password
	// required: true
	// example: password123
	Password string `json:"password"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a new user account with a salted password hash. Usernames are unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} models.StatusResponse "User created successfully"
// @Failure 400 {object} models.StatusResponse "Invalid request body"
// @Failure 409 {object} models.StatusResponse "Username already exists"
// @Router /create-user [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid request body"))
			return
		}

		if strings.TrimSpace(req.Username) == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("username and password are required"))
			return
		}

		if err := svc.Register(r.Context(), req.Username, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(models.Error("Username already exists"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Success("User created successfully"))
	}
}
