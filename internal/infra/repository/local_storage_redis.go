package repository

import (
	"context"
	"errors"
	"fmt"

	repo "storefront/internal/repository"

	"github.com/redis/go-redis/v9"
)

// redisのキーは prefix + key
type LocalStorageRedisRepository struct {
	client *redis.Client
	prefix string
}

// DI
func NewLocalStorageRedisRepository(client *redis.Client, prefix string) *LocalStorageRedisRepository {
	return &LocalStorageRedisRepository{client: client, prefix: prefix}
}

// NewRedisClient は REDIS_URL から接続してPingまで確認する。
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *LocalStorageRedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// 期限なしで保存（localStorageと同じ）
func (r *LocalStorageRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *LocalStorageRedisRepository) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}
