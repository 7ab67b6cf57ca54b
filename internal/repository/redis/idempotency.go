package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/repository"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore maps Idempotency-Key values to the inquiry id they
// originally produced. Keys expire after the configured TTL.
type IdempotencyStore struct {
	client *redis.Client
	log    *zap.Logger
	prefix string
	ttl    time.Duration
}

// NewIdempotencyStore builds a Redis-backed idempotency store.
func NewIdempotencyStore(client *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &IdempotencyStore{client: client, log: log, prefix: prefix, ttl: ttl}
}

// Get returns the inquiry id recorded for the key. A key that has never been
// seen yields repository.ErrNotFound.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get idempotency key: %w", err)
	}
	return val, nil
}

// Put records the key with SETNX semantics. A key that already holds a value
// keeps its original inquiry id.
func (s *IdempotencyStore) Put(ctx context.Context, key, inquiryID string) error {
	set, err := s.client.SetNX(ctx, s.redisKey(key), inquiryID, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("put idempotency key: %w", err)
	}
	if !set {
		s.log.Debug("idempotency key already recorded", zap.String("key", key))
	}
	return nil
}

func (s *IdempotencyStore) redisKey(key string) string {
	return s.prefix + ":" + key
}
