package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"circle-service/internal/post"
)

// Cache keeps one assembled feed per circle in Redis. Membership is never
// cached — only the post list, which every member sees identically.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func feedKey(circleID uint64) string { return fmt.Sprintf("feed:circle:%d", circleID) }

func (c *Cache) Get(ctx context.Context, circleID uint64) ([]post.Post, bool) {
	raw, err := c.rdb.Get(ctx, feedKey(circleID)).Bytes()
	if err != nil {
		return nil, false
	}
	var posts []post.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

func (c *Cache) Set(ctx context.Context, circleID uint64, posts []post.Post) {
	b, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, feedKey(circleID), b, c.ttl).Err()
}

// Invalidate implements post.FeedInvalidator.
func (c *Cache) Invalidate(ctx context.Context, circleID uint64) {
	_ = c.rdb.Del(ctx, feedKey(circleID)).Err()
}
