package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cookifyai/backend/config"
)

// FavoritesStore is the explicit favorites interface injected into the
// handlers: toggle a recipe, check membership, list everything.
type FavoritesStore interface {
	Toggle(ctx context.Context, recipeID int64) (bool, error)
	IsFavorite(ctx context.Context, recipeID int64) (bool, error)
	List(ctx context.Context) ([]int64, error)
}

const favoritesKey = "recipes:favorites"

// RedisFavorites stores favorite recipe IDs in a Redis set so they survive
// process restarts.
type RedisFavorites struct {
	client *redis.Client
}

// NewRedisFavorites creates a Redis-backed favorites store and verifies
// the connection.
func NewRedisFavorites(cfg *config.Config) (*RedisFavorites, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	// Use the Redis URL when provided (production deployments).
	if cfg.RedisURL != "" {
		parsedOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("[Favorites] Connected to Redis at %s", opts.Addr)
	return &RedisFavorites{client: client}, nil
}

// toggleScript flips set membership in one round trip so two concurrent
// toggles of the same recipe cannot interleave between the check and the
// write.
var toggleScript = redis.NewScript(`
if redis.call("SREM", KEYS[1], ARGV[1]) == 1 then
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1`)

// Toggle flips the favorite state of a recipe and reports whether it is
// now a favorite.
func (f *RedisFavorites) Toggle(ctx context.Context, recipeID int64) (bool, error) {
	member := strconv.FormatInt(recipeID, 10)

	res, err := toggleScript.Run(ctx, f.client, []string{favoritesKey}, member).Int()
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return res == 1, nil
}

// IsFavorite reports whether a recipe is currently a favorite.
func (f *RedisFavorites) IsFavorite(ctx context.Context, recipeID int64) (bool, error) {
	ok, err := f.client.SIsMember(ctx, favoritesKey, strconv.FormatInt(recipeID, 10)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return ok, nil
}

// List returns all favorite recipe IDs, sorted ascending.
func (f *RedisFavorites) List(ctx context.Context) ([]int64, error) {
	members, err := f.client.SMembers(ctx, favoritesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// MemoryFavorites is an in-memory favorites store for tests and keyless
// development runs. It preserves insertion order and resets on restart.
type MemoryFavorites struct {
	mu  sync.Mutex
	ids []int64
}

// NewMemoryFavorites creates an empty in-memory favorites store.
func NewMemoryFavorites() *MemoryFavorites {
	return &MemoryFavorites{}
}

func (f *MemoryFavorites) Toggle(_ context.Context, recipeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, id := range f.ids {
		if id == recipeID {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			return false, nil
		}
	}
	f.ids = append(f.ids, recipeID)
	return true, nil
}

func (f *MemoryFavorites) IsFavorite(_ context.Context, recipeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range f.ids {
		if id == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *MemoryFavorites) List(_ context.Context) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]int64, len(f.ids))
	copy(out, f.ids)
	return out, nil
}
