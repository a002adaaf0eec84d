package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"petshop/internal/logger"
)

// ErrSessionNotFound is returned when a session token has no live entry,
// because it was logged out, expired, or never issued.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores active sessions in Redis. Each entry maps a
// token ID to the username it was issued for and expires with the session
// lifetime, so logout and expiry both revoke the token.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSessionRepository creates a session repository with the given session lifetime.
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

// Save registers a session for the given token ID.
func (r *SessionRepository) Save(ctx context.Context, tokenID, username string) error {
	key := sessionKey(tokenID)
	err := r.client.Set(ctx, key, username, r.exp).Err()

	logger.Log.Infow("session save",
		"key", key,
		"username", username,
		"error", err,
	)

	return err
}

// Get returns the username bound to the token ID, or ErrSessionNotFound
// if the session is not live.
func (r *SessionRepository) Get(ctx context.Context, tokenID string) (string, error) {
	key := sessionKey(tokenID)

	username, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("session get",
		"key", key,
		"result", username,
		"error", err,
	)

	if err == redis.Nil {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// Delete removes the session. Deleting a missing session is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, tokenID string) error {
	key := sessionKey(tokenID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
