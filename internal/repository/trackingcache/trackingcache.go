package trackingcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ecofreight/internal/entities"
	"ecofreight/internal/service/tracking"
)

const keyPrefix = "tracking:view:"

// Cache holds the public tracking view in redis, keyed by tracking code.
// Entries expire by TTL and are invalidated on every recorded update.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) GetTrackingView(ctx context.Context, trackingCode string) (*entities.TrackingView, error) {
	payload, err := c.client.Get(ctx, keyPrefix+trackingCode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, tracking.ErrTrackingViewNotCached
		}
		return nil, fmt.Errorf("tracking cache get: %w", err)
	}

	var view entities.TrackingView
	if err := json.Unmarshal(payload, &view); err != nil {
		return nil, fmt.Errorf("tracking cache decode: %w", err)
	}

	return &view, nil
}

func (c *Cache) SetTrackingView(ctx context.Context, trackingCode string, view *entities.TrackingView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("tracking cache encode: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+trackingCode, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("tracking cache set: %w", err)
	}

	return nil
}

func (c *Cache) Invalidate(ctx context.Context, trackingCode string) error {
	if err := c.client.Del(ctx, keyPrefix+trackingCode).Err(); err != nil {
		return fmt.Errorf("tracking cache del: %w", err)
	}

	return nil
}
