package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"petshop/internal/logger"
	"petshop/internal/models"
)

// SessionResolver defines the minimal interface needed by the middleware.
type SessionResolver interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
}

// usernameKey is an unexported type for the username context key.
type usernameKey struct{}

// setUsernameToContext stores the authenticated username in the context.
func setUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// GetUsernameFromContext returns the authenticated username, or "" if the
// request did not pass the auth middleware.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey{}).(string)
	return username
}

// AuthMiddleware returns a middleware that requires a live session. The
// resolved username is stored in the request context for handlers.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := resolver.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Error("Unauthorized"))
				return
			}

			username, err := resolver.Resolve(ctx, token)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Error("Unauthorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(setUsernameToContext(ctx, username)))
		})
	}
}
