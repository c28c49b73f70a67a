// Package store provides the Redis-backed MemoryStore for companion
// sessions that must survive a restart.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	mindsight "github.com/mindsight-labs/mindsight-sdk-go"
)

// RedisStore implements mindsight.MemoryStore on Redis. Keys are namespaced
// as "{prefix}:{namespace}:{key}" for KV and "{prefix}:{namespace}:list:{key}"
// for lists.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

// RedisStoreConfig configures the Redis store.
type RedisStoreConfig struct {
	Prefix string        // key prefix, default "mindsight"
	TTL    time.Duration // default TTL for KV entries, 0 = no expiry
}

// NewRedisStore creates a MemoryStore backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, config ...RedisStoreConfig) *RedisStore {
	cfg := RedisStoreConfig{Prefix: "mindsight"}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "mindsight"
	}
	return &RedisStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

// Dial connects to a Redis address and wraps it in a RedisStore.
func Dial(addr string, config ...RedisStoreConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return NewRedisStore(client, config...)
}

func (r *RedisStore) kvKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, namespace, key)
}

func (r *RedisStore) listKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:list:%s", r.prefix, namespace, key)
}

func (r *RedisStore) Get(namespace, key string) (string, error) {
	val, err := r.client.Get(r.ctx, r.kvKey(namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *RedisStore) Set(namespace, key, value string) error {
	return r.client.Set(r.ctx, r.kvKey(namespace, key), value, r.ttl).Err()
}

func (r *RedisStore) Delete(namespace, key string) error {
	return r.client.Del(r.ctx, r.kvKey(namespace, key)).Err()
}

func (r *RedisStore) Append(namespace, key, value string) error {
	return r.client.RPush(r.ctx, r.listKey(namespace, key), value).Err()
}

func (r *RedisStore) GetList(namespace, key string, limit, offset int) ([]string, error) {
	start := int64(offset)
	stop := int64(-1)
	if limit > 0 {
		stop = start + int64(limit) - 1
	}
	return r.client.LRange(r.ctx, r.listKey(namespace, key), start, stop).Result()
}

func (r *RedisStore) TrimList(namespace, key string, maxSize int) error {
	return r.client.LTrim(r.ctx, r.listKey(namespace, key), int64(-maxSize), -1).Err()
}

func (r *RedisStore) ClearList(namespace, key string) error {
	return r.client.Del(r.ctx, r.listKey(namespace, key)).Err()
}

func (r *RedisStore) ListLength(namespace, key string) (int, error) {
	n, err := r.client.LLen(r.ctx, r.listKey(namespace, key)).Result()
	return int(n), err
}

// Close closes the underlying Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Compile-time interface check.
var _ mindsight.MemoryStore = (*RedisStore)(nil)
