package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "shopswift"

// RedisStore maps a namespace/key pair to one Redis string. Every write
// refreshes the TTL so idle sessions expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// OpenRedis parses a redis:// URL and checks the connection.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (r *RedisStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	v, err := r.client.Get(ctx, r.key(namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	if err := r.client.Set(ctx, r.key(namespace, key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, namespace, key string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	if err := r.client.Del(ctx, r.key(namespace, key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) key(namespace, key string) string {
	return redisKeyPrefix + ":" + namespace + ":" + key
}
