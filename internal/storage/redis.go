package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultKeyPrefix namespaces all preference keys in shared backends to avoid collisions.
	defaultKeyPrefix = "readerprefs:"

	redisOpTimeout = 2 * time.Second
)

func init() {
	Register("redis", newRedisStore)
}

// redisStore implements the Store interface using Redis/Valkey.
//
// All preferences live in a single hash, {prefix}settings, with one field per
// option key. Values never expire; Redis persistence settings decide durability.
type redisStore struct {
	client  *redis.Client
	logger  Logger
	hashKey string // e.g. "readerprefs:settings"
}

func newRedisStore(cfg ProviderConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Verify connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisStore{
		client:  client,
		logger:  cfg.Logger,
		hashKey: cfg.KeyPrefix + "settings",
	}, nil
}

func (r *redisStore) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisStore) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val, err := r.client.HGet(ctx, r.hashKey, key).Bytes()
	if err != nil {
		// redis.Nil means the field doesn't exist, which is a normal miss.
		if !errors.Is(err, redis.Nil) {
			r.logError("redis store Get failed", err)
		}
		return nil, false
	}
	return val, true
}

func (r *redisStore) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.HSet(ctx, r.hashKey, key, value).Err(); err != nil {
		r.logError("redis store Set failed", err)
	}
}

func (r *redisStore) Contains(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	ok, err := r.client.HExists(ctx, r.hashKey, key).Result()
	if err != nil {
		r.logError("redis store Contains failed", err)
	}
	return err == nil && ok
}

func (r *redisStore) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	n, err := r.client.HLen(ctx, r.hashKey).Result()
	if err != nil {
		r.logError("redis store Len failed", err)
		return 0
	}
	return int(n)
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
