package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"eduhub/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ConnectRedis establishes the Redis connection used by the identity
// cache. Redis being down is not fatal: callers fall through to Mongo.
func ConnectRedis(cfg *config.Config) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis at %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("Successfully connected to Redis at %s", cfg.RedisAddr)
	return nil
}

// GetRedis returns the Redis client, nil when Redis is not connected.
func GetRedis() *redis.Client {
	return redisClient
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}
