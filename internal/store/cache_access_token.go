package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/redis/go-redis/v9"
)

const accessTokenKeyPrefix = "provider:access_token:"

// redisAccessTokenCache stores upstream access tokens in Redis under
// "provider:access_token:<key>".
type redisAccessTokenCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisAccessTokenCache connects to Redis and verifies the connection
// with PING.
func NewRedisAccessTokenCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (AccessTokenCache, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisAccessTokenCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewRedisAccessTokenCache").Msg("connected to redis successfully")

	return newRedisAccessTokenCache(client, log), client, nil
}

func newRedisAccessTokenCache(client *redis.Client, log *logger.Logger) *redisAccessTokenCache {
	return &redisAccessTokenCache{client: client, logger: log}
}

func (c *redisAccessTokenCache) GetAccessToken(ctx context.Context, key string) (string, bool, error) {
	token, err := c.client.Get(ctx, accessTokenKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return token, true, nil
}

// SetAccessToken stores token for ttl. A non-positive ttl is a no-op since
// the token would already be expired.
func (c *redisAccessTokenCache) SetAccessToken(ctx context.Context, key, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, accessTokenKey(key), token, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

// DeleteAccessToken removes the cached token. Deleting a missing key is
// not an error.
func (c *redisAccessTokenCache) DeleteAccessToken(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, accessTokenKey(key)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func accessTokenKey(key string) string {
	return accessTokenKeyPrefix + key
}
