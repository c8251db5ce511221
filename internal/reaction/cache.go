// internal/reaction/cache.go

package reaction

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const likeCountTTL = time.Hour

// Cache keeps hot like counts in redis so the feed doesn't hammer the
// reactions table. Values expire after an hour and are refilled from the
// database on the next read.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func likeCountKey(profileID int64) string {
	return fmt.Sprintf("likes:profile:%d", profileID)
}

// GetLikeCount returns the cached count and whether the key was present.
func (c *Cache) GetLikeCount(ctx context.Context, profileID int64) (int64, bool, error) {
	val, err := c.client.Get(ctx, likeCountKey(profileID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (c *Cache) SetLikeCount(ctx context.Context, profileID, count int64) error {
	return c.client.Set(ctx, likeCountKey(profileID), count, likeCountTTL).Err()
}

// IncrLikeCount bumps the cached count only when the key already exists,
// leaving a cold key to be filled from the database.
func (c *Cache) IncrLikeCount(ctx context.Context, profileID int64) error {
	key := likeCountKey(profileID)

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}

	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, likeCountTTL).Err()
}
