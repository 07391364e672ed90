package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avandine/bootkit/pkg/contracts"
)

type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis wraps an existing client. Keys are namespaced with prefix when
// one is given.
func NewRedis(client redis.UniversalClient, prefix string) contracts.Cache {
	return &redisCache{client: client, prefix: prefix}
}

func (r *redisCache) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ErrCacheUnavailable.WithDetail("key", key).WithCause(err)
	}
	return value, true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return ErrCacheUnavailable.WithDetail("key", key).WithCause(err)
	}
	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return ErrCacheUnavailable.WithDetail("key", key).WithCause(err)
	}
	return nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}

// clientFromConfig builds a go-redis client from the cache.redis section.
// A nil section yields a client with library defaults on localhost.
func clientFromConfig(cfg contracts.Config) *redis.Client {
	opts := &redis.Options{Addr: "localhost:6379"}
	if cfg != nil {
		opts.Addr = cfg.GetString("addr", opts.Addr)
		opts.Password = cfg.GetString("password", "")
		opts.DB = cfg.GetInt("db", 0)
		opts.PoolSize = cfg.GetInt("pool_size", 10)
	}
	return redis.NewClient(opts)
}
