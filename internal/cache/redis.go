package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airportadm/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// DeletePrefix removes every key under the given prefix, used to drop an
// entity's cached pages after a mutation.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// ListCache caches paginated, unfiltered listings of one entity type.
type ListCache[T any] struct {
	store  *RedisCache
	entity string
}

func NewListCache[T any](store *RedisCache, entity string) *ListCache[T] {
	return &ListCache[T]{store: store, entity: entity}
}

func (l *ListCache[T]) GetList(ctx context.Context, page, pageSize int) ([]T, error) {
	data, err := l.store.Get(ctx, l.key(page, pageSize))
	if err != nil || data == nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (l *ListCache[T]) SetList(ctx context.Context, page, pageSize int, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return l.store.Set(ctx, l.key(page, pageSize), payload)
}

func (l *ListCache[T]) Invalidate(ctx context.Context) error {
	return l.store.DeletePrefix(ctx, fmt.Sprintf("cache:%s:list:", l.entity))
}

func (l *ListCache[T]) key(page, pageSize int) string {
	return fmt.Sprintf("cache:%s:list:%d:%d", l.entity, page, pageSize)
}
