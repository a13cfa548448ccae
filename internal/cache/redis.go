package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
)

// RedisCache fails open: any redis error is logged and reported as a miss.
type RedisCache struct {
	rdb redis.Cmdable
}

func NewRedisCache(rdb redis.Cmdable) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		logging.FromContext(ctx).Warn(ctx, "cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		logging.FromContext(ctx).Warn(ctx, "cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// GetJSON decodes a cached value into v. A value that no longer decodes is
// treated as a miss.
func GetJSON[T any](ctx context.Context, c interface {
	Get(ctx context.Context, key string) ([]byte, bool)
}, key string) (T, bool) {
	var v T
	data, ok := c.Get(ctx, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false
	}
	return v, true
}

// NopCache always misses. It stands in when Redis is unreachable at startup.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (NopCache) Set(context.Context, string, []byte, time.Duration) {}

func (NopCache) Delete(context.Context, ...string) {}
