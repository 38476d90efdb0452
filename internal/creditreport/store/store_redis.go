package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"creditguard/internal/creditreport/models"
	"creditguard/pkg/platform/sentinel"
)

const redisKeyPrefix = "creditguard:profile:"

// RedisStore caches the latest profile per user and bureau in Redis. Expiry
// is delegated to Redis key TTLs.
type RedisStore struct {
	client   *redis.Client
	cacheTTL time.Duration
}

// NewRedisStore constructs a Redis-backed profile store.
func NewRedisStore(client *redis.Client, cacheTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, cacheTTL: cacheTTL}
}

func redisKey(userID string, bureau models.Bureau) string {
	return redisKeyPrefix + userID + ":" + bureau.String()
}

func (s *RedisStore) Save(ctx context.Context, userID string, profile *models.CreditProfile) error {
	if profile == nil {
		return nil
	}
	body, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(userID, profile.Bureau), body, s.cacheTTL).Err(); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *RedisStore) FindLatest(ctx context.Context, userID string, bureau models.Bureau) (*models.CreditProfile, error) {
	body, err := s.client.Get(ctx, redisKey(userID, bureau)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	var profile models.CreditProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

func (s *RedisStore) ListLatest(ctx context.Context, userID string) ([]models.CreditProfile, error) {
	keys := make([]string, len(models.Bureaus))
	for i, b := range models.Bureaus {
		keys[i] = redisKey(userID, b)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	out := make([]models.CreditProfile, 0, len(values))
	for _, v := range values {
		body, ok := v.(string)
		if !ok {
			continue
		}
		var profile models.CreditProfile
		if err := json.Unmarshal([]byte(body), &profile); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		out = append(out, profile)
	}
	return out, nil
}
