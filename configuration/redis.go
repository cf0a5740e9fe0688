package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server that holds password-reset tokens,
// retrying a few times while it comes up.
func InitRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	var client *redis.Client
	var err error
	maxRetries := 5
	retryDelay := time.Second * 5
	for i := 0; i < maxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Network: "tcp",
			Addr:    addr,
			DB:      0,
		})

		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			return client, nil
		}

		fmt.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, maxRetries, err.Error())
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}
