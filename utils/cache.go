package utils

import (
	"context"
	"fmt"
	"time"

	"medibook/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client. A failed ping is logged and
// leaves CacheClient nil so callers fall back to uncached behaviour.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis cache unavailable, continuing without cache", zap.Error(err))
		_ = client.Close()
		return
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client, or nil when Redis is unavailable.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// AcquireLock takes a SET NX lock on key. The returned release func is safe to call
// even when the lock was not acquired.
func AcquireLock(ctx context.Context, client *redis.Client, key string, ttl time.Duration) (bool, func(), error) {
	noop := func() {}
	if client == nil {
		return false, noop, fmt.Errorf("cache client not configured")
	}
	token := fmt.Sprintf("%d", time.Now().UnixNano())
	ok, err := client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return false, noop, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return false, noop, nil
	}
	release := func() {
		// Only delete the lock if it still carries our token.
		current, err := client.Get(context.Background(), key).Result()
		if err == nil && current == token {
			_ = client.Del(context.Background(), key).Err()
		}
	}
	return true, release, nil
}
