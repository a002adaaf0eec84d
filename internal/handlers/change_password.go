package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/services"
)

// PasswordChanger defines the interface that the password change service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, token, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// New password
	// required: true
	// example: hunter2
	NewPassword string `json:"new_password"`
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Description Overwrites the stored password hash for the session's user
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} models.StatusResponse "Password updated successfully"
// @Failure 400 {object} models.StatusResponse "Invalid request body"
// @Failure 401 {object} models.StatusResponse "Unauthorized"
// @Router /change-password [post]
// @Security SessionCookie
func NewChangePasswordHandler(svc PasswordChanger, extractor TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid request body"))
			return
		}

		if req.NewPassword == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("new_password is required"))
			return
		}

		token, err := extractor.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Error("Unauthorized"))
			return
		}

		if err := svc.ChangePassword(ctx, token, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSession):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Error("Unauthorized"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.Success("Password updated successfully"))
	}
}
