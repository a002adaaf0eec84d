package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/sessions"
)

// TokenExtractor extracts the session token from a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that revokes the current
// session and clears the cookie.
// @Summary User logout
// @Description Invalidates the session. Logging out an already invalid session still succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} models.StatusResponse "Logged out successfully"
// @Failure 401 {object} models.StatusResponse "Unauthorized"
// @Router /logout [post]
// @Security SessionCookie
func NewLogoutHandler(svc Logouter, extractor TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		// The auth middleware has already vetted the token; a missing
		// cookie here still counts as logged out.
		token, err := extractor.GetTokenFromRequest(ctx, r)
		if err == nil {
			if err := svc.Logout(ctx, token); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessions.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.Success("Logged out successfully"))
	}
}
