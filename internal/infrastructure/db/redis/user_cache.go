package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

const userCacheTTL = 15 * time.Minute

// UserCache caches user profile lookups. Accounts are never mutated after
// registration, so entries cannot go stale; the TTL only bounds memory.
// Key format: user:<user_id>
type UserCache struct {
	client *redis.Client
}

func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a cache miss.
func (c *UserCache) Get(ctx context.Context, userID string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("user cache decode: %w", err)
	}
	return &u, nil
}

// Set stores the user for userCacheTTL. The password hash carries a "-" JSON
// tag, so it never reaches Redis.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, userCacheTTL).Err()
}

func (c *UserCache) key(userID string) string {
	return "user:" + userID
}
