package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every persistence component of the server.
// AccessTokenCache is nil when no Redis address is configured.
type Storages struct {
	UserRepository    UserRepository
	BookingRepository BookingRepository
	AccessTokenCache  AccessTokenCache

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and, when
// configured, connects to Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
		db:                db,
	}

	if cfg.Cache.RedisAddress == "" {
		log.Info().Msg("redis address is not set, provider access tokens will not be cached")
		return storages, nil
	}

	cache, client, err := NewRedisAccessTokenCache(ctx, cfg.Cache, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	storages.AccessTokenCache = cache
	storages.redis = client

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
