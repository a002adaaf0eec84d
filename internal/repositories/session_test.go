package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSessionRepository(rdb, 2*time.Second)

	t.Run("Save and Get session", func(t *testing.T) {
		err := repo.Save(ctx, "token-1", "alice")
		assert.NoError(t, err)

		username, err := repo.Get(ctx, "token-1")
		assert.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("Get missing session", func(t *testing.T) {
		_, err := repo.Get(ctx, "no-such-token")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete revokes session", func(t *testing.T) {
		err := repo.Save(ctx, "token-2", "bob")
		assert.NoError(t, err)

		err = repo.Delete(ctx, "token-2")
		assert.NoError(t, err)

		_, err = repo.Get(ctx, "token-2")
		assert.ErrorIs(t, err, ErrSessionNotFound)

		// Deleting again is a no-op.
		err = repo.Delete(ctx, "token-2")
		assert.NoError(t, err)
	})

	t.Run("Session expires", func(t *testing.T) {
		err := repo.Save(ctx, "token-3", "carol")
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "token-3")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
