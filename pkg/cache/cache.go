// Package cache invalidates the storefront's Redis catalog cache after
// patches write catalog data. Every key lives under KeyPrefix.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
)

const KeyPrefix = "catalog:"

const scanBatch = 500

// Cache wraps a Redis client. A nil *Cache is valid and every method is a
// no-op, so callers do not need to care whether Redis is configured.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Connect initialises the Redis client and verifies the connection with a ping.
func Connect(ctx context.Context, addr, password string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return New(rdb), nil
}

func ProductKey(sku string) string {
	return KeyPrefix + "product:" + sku
}

func CategoryKey(id uint) string {
	return fmt.Sprintf("%scategory:%d", KeyPrefix, id)
}

// Forget removes keys.
func (c *Cache) Forget(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// FlushCatalog deletes every key under KeyPrefix and returns how many were
// removed.
func (c *Cache) FlushCatalog(ctx context.Context) (int, error) {
	if c == nil {
		return 0, nil
	}

	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, KeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("cache: scan: %w", err)
		}

		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("cache: del: %w", err)
			}
			removed += int(n)
		}

		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// Subscribe invalidates product and category entries as soon as they are
// written. Failures are logged; a stale cache entry never fails a patch.
func (c *Cache) Subscribe(d *event.Dispatcher) {
	if c == nil {
		return
	}

	d.Listen(event.ProductSaved, func(ctx context.Context, payload any) {
		if p, ok := payload.(event.ProductPayload); ok {
			c.forgetLogged(ctx, ProductKey(p.SKU))
		}
	})
	d.Listen(event.SourceItemsSaved, func(ctx context.Context, payload any) {
		if p, ok := payload.(event.SourceItemsPayload); ok {
			keys := make([]string, len(p.SKUs))
			for i, sku := range p.SKUs {
				keys[i] = ProductKey(sku)
			}
			c.forgetLogged(ctx, keys...)
		}
	})
	d.Listen(event.CategoryLinksAssigned, func(ctx context.Context, payload any) {
		if p, ok := payload.(event.CategoryLinksPayload); ok {
			keys := []string{ProductKey(p.SKU)}
			for _, id := range p.CategoryIDs {
				keys = append(keys, CategoryKey(id))
			}
			c.forgetLogged(ctx, keys...)
		}
	})
}

func (c *Cache) forgetLogged(ctx context.Context, keys ...string) {
	if err := c.Forget(ctx, keys...); err != nil {
		logger.WithCtx(ctx).Warn("cache: invalidate failed", "keys", keys, "err", err)
	}
}
