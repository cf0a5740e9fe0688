package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetTokenStore holds one-time password-reset tokens with a TTL.
type ResetTokenStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Del(ctx context.Context, token string) error
}

// RedisTokenStore keeps reset tokens in redis, namespaced under "reset:".
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, resetKey(token), userID, ttl).Err()
}

func (s *RedisTokenStore) Get(ctx context.Context, token string) (string, error) {
	return s.client.Get(ctx, resetKey(token)).Result()
}

func (s *RedisTokenStore) Del(ctx context.Context, token string) error {
	return s.client.Del(ctx, resetKey(token)).Err()
}

func resetKey(token string) string {
	return fmt.Sprintf("reset:%s", token)
}
