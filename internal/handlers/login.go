package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/services"
	"petshop/internal/sessions"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: testuser
	Username string `json:"username"`

	// Password
	// required: true
	// example: password123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login. On success the
// session token is attached as an HTTP-only cookie.
// @Summary User login
// @Description Authenticate user and set a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.StatusResponse "Login successful"
// @Failure 400 {object} models.StatusResponse "Invalid request body"
// @Failure 401 {object} models.StatusResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid request body"))
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Error("Invalid username or password"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessions.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessionTTL),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.Success("Login successful"))
	}
}
