package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func PageKey(url string) string {
	return "page:" + url
}

// GetPage returns a cached page body. Cache misses and cache errors
// both report !ok; a broken cache must never fail a refresh.
func (c *Cache) GetPage(ctx context.Context, url string) (string, bool) {
	body, err := c.client.Get(ctx, PageKey(url)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Error("failed to get cached page",
			zap.String("url", url),
			zap.Error(err),
		)
		return "", false
	}

	c.logger.Debug("page cache hit", zap.String("url", url))
	return body, true
}

// SetPage caches a page body with the configured TTL.
func (c *Cache) SetPage(ctx context.Context, url, body string) {
	if err := c.client.Set(ctx, PageKey(url), body, c.ttl).Err(); err != nil {
		c.logger.Error("failed to cache page",
			zap.String("url", url),
			zap.Error(err),
		)
	}
}
