package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/examprep-backend/internal/config"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := models.User{ID: "u1", Mobile: "9876543210", Email: "user@gmail.com", PlanMonths: 3}
	err := cache.Set("user:u1", expected, time.Minute)
	require.NoError(t, err)

	var actual models.User
	found, err := cache.Get("user:u1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.User
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRosterRoundTrip(t *testing.T) {
	cache := setupTestCache(t)

	roster := []*models.User{
		{ID: "u1", Mobile: "9876543210", Email: "a@b.c"},
		{ID: "u2", Mobile: "8765432109", Email: "b@c.d"},
	}
	require.NoError(t, cache.Set(RosterKey, roster, 0))

	var got []*models.User
	found, err := cache.Get(RosterKey, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("k", "v", time.Minute))
	require.NoError(t, cache.Invalidate("k"))

	var out string
	found, err := cache.Get("k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
