//go:build unit
// +build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Take(t *testing.T) {
	store := NewMemoryStore(3, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for i := 2; i >= 0; i-- {
		res, err := store.Take(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 3, res.Limit)
		assert.Equal(t, i, res.Remaining)
	}

	now = now.Add(20 * time.Second)
	res, err := store.Take(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 40*time.Second, res.RetryAfter, "retry after the rest of the window")

	other, err := store.Take(context.Background(), "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are limited independently")

	now = now.Add(40 * time.Second)
	res, err = store.Take(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed, "a new window opens once the old one elapses")
	assert.Equal(t, 2, res.Remaining)
}

func TestMemoryStore_CeilingHoldsForWholeWindow(t *testing.T) {
	const max = 1000
	store := NewMemoryStore(max, 15*time.Minute)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	store.now = func() time.Time { return now }

	allowed := 0
	for i := 0; i < max; i++ {
		res, err := store.Take(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		if res.Allowed {
			allowed++
		}
	}

	for now = start.Add(time.Second); now.Before(start.Add(15 * time.Minute)); now = now.Add(time.Second) {
		res, err := store.Take(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		if res.Allowed {
			allowed++
		}
	}

	assert.Equal(t, max, allowed)
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := NewMemoryStore(10, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.Take(context.Background(), "idle")
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 0, store.Sweep())

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, store.Sweep())
}
