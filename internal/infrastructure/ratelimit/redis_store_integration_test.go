//go:build integration
// +build integration

package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Take(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	store, err := NewRedisStore(url, 2, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Ping(context.Background()))

	key := uuid.NewString()
	for i := 1; i >= 0; i-- {
		res, err := store.Take(context.Background(), key)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, i, res.Remaining)
	}

	res, err := store.Take(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore("://nope", 1, time.Minute)
	assert.Error(t, err)
}
