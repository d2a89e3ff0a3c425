package judge

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Cooldown remembers in Redis that the judge answered 429 so that further calls fail
// fast until the key expires. Redis failures never block a judge call.
type Cooldown struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewCooldown(rdb *redis.Client, key string, ttl time.Duration) *Cooldown {
	return &Cooldown{rdb: rdb, key: key, ttl: ttl}
}

// Active reports whether a cooldown window is open.
func (c *Cooldown) Active(ctx context.Context) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	n, err := c.rdb.Exists(ctx, c.key).Result()
	if err != nil {
		log.WithField("key", c.key).Warnf("judge cooldown check failed: %v", err)
		return false
	}
	return n > 0
}

// Trip opens a cooldown window of retryAfter, or the configured default when retryAfter <= 0.
func (c *Cooldown) Trip(ctx context.Context, retryAfter time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	ttl := retryAfter
	if ttl <= 0 {
		ttl = c.ttl
	}
	if ttl <= 0 {
		return
	}
	if err := c.rdb.Set(ctx, c.key, time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		log.WithField("key", c.key).Warnf("failed to open judge cooldown: %v", err)
		return
	}
	log.WithFields(log.Fields{"key": c.key, "ttl": ttl}).Info("judge rate limited, cooldown opened")
}
