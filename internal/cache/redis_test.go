package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type mapGetter map[string][]byte

func (m mapGetter) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m[key]
	return v, ok
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()
	c := mapGetter{
		"piece": []byte(`{"title":"Clair de Lune"}`),
		"bad":   []byte(`{`),
	}
	type piece struct {
		Title string `json:"title"`
	}

	v, ok := GetJSON[piece](ctx, c, "piece")
	assert.True(t, ok)
	assert.Equal(t, "Clair de Lune", v.Title)

	_, ok = GetJSON[piece](ctx, c, "bad")
	assert.False(t, ok)

	_, ok = GetJSON[piece](ctx, c, "missing")
	assert.False(t, ok)
}

func TestRedisCache_FailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	c := NewRedisCache(rdb)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Delete(ctx, "k")
	c.Delete(ctx)
}

func TestNopCache(t *testing.T) {
	var c NopCache
	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"), time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Delete(ctx, "k")
}
