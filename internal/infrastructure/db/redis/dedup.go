package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "coffeeshop:seen:"

// SeenSet remembers keys for a bounded time using SET NX. Exactly one caller
// can claim a given key until it expires.
type SeenSet struct {
	client *redis.Client
}

// NewSeenSet creates a SeenSet wrapping the given Redis client.
func NewSeenSet(client *redis.Client) *SeenSet {
	return &SeenSet{client: client}
}

// Claim reports whether this call was the first to present key within ttl.
func (s *SeenSet) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("seen-set claim: %w", err)
	}
	return ok, nil
}
