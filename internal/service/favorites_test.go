package service

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookifyai/backend/config"
)

func TestMemoryFavoritesToggle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFavorites()

	fav, err := store.Toggle(ctx, 42)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = store.IsFavorite(ctx, 42)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = store.Toggle(ctx, 42)
	require.NoError(t, err)
	assert.False(t, fav)

	fav, err = store.IsFavorite(ctx, 42)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestMemoryFavoritesListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFavorites()

	for _, id := range []int64{5, 3, 9} {
		_, err := store.Toggle(ctx, id)
		require.NoError(t, err)
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 9}, ids)
}

func TestMemoryFavoritesConcurrentToggle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFavorites()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Toggle(ctx, 42)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	fav, err := store.IsFavorite(ctx, 42)
	require.NoError(t, err)
	assert.False(t, fav, "an even number of toggles must cancel out")
}

func TestRedisFavorites(t *testing.T) {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST not set; skipping Redis-backed favorites test")
	}

	store, err := NewRedisFavorites(&config.Config{
		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: "6379",
	})
	require.NoError(t, err)

	ctx := context.Background()
	_ = store.client.Del(ctx, favoritesKey)

	fav, err := store.Toggle(ctx, 100)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = store.Toggle(ctx, 7)
	require.NoError(t, err)
	assert.True(t, fav)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 100}, ids)

	fav, err = store.Toggle(ctx, 100)
	require.NoError(t, err)
	assert.False(t, fav)

	ok, err := store.IsFavorite(ctx, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisFavoritesConcurrentToggle(t *testing.T) {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST not set; skipping Redis-backed favorites test")
	}

	store, err := NewRedisFavorites(&config.Config{
		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: "6379",
	})
	require.NoError(t, err)

	ctx := context.Background()
	_ = store.client.Del(ctx, favoritesKey)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Toggle(ctx, 200)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ok, err := store.IsFavorite(ctx, 200)
	require.NoError(t, err)
	assert.False(t, ok, "an even number of toggles must cancel out")
}
