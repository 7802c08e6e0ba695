package storage

import (
	"context"
	"encoding/json"
	"time"

	"meal-orders/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisPriceCache keeps freshly resolved catalog items for a short TTL so a
// burst of checkouts does not hammer the catalog service.
type RedisPriceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPriceCache(client *redis.Client, ttl time.Duration) *RedisPriceCache {
	return &RedisPriceCache{Client: client, TTL: ttl}
}

func (c *RedisPriceCache) ItemKey(itemID string) string {
	return "catalog:item:" + itemID
}

func (c *RedisPriceCache) GetItem(ctx context.Context, key string) (*domain.ResolvedItem, error) {
	raw, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item domain.ResolvedItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RedisPriceCache) SetItem(ctx context.Context, key string, item *domain.ResolvedItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}
