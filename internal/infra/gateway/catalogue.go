package gateway

import (
	"context"
	"sync"
	"time"

	"loyalty-console/internal/domain/entitlement"

	"golang.org/x/sync/singleflight"
)

// catalogueCache keeps the feature catalogue warm for a short TTL and
// collapses concurrent refreshes into a single gateway call. The catalogue
// changes on deploys, not per request.
type catalogueCache struct {
	client *Client
	ttl    time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	cached    map[entitlement.FeatureKey]string
	fetchedAt time.Time
}

func newCatalogueCache(client *Client, ttl time.Duration) *catalogueCache {
	return &catalogueCache{client: client, ttl: ttl}
}

func (c *catalogueCache) features(ctx context.Context) (map[entitlement.FeatureKey]string, error) {
	c.mu.RLock()
	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("features", func() (any, error) {
		var payload map[entitlement.FeatureKey]string
		if err := c.client.get(ctx, c.client.cfg.BaseURL+"/v1/catalogue/features", &payload); err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = payload
		c.fetchedAt = time.Now()
		c.mu.Unlock()

		return payload, nil
	})
	if err != nil {
		// Serve a stale catalogue over an error when one exists.
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.cached != nil {
			return c.cached, nil
		}
		return nil, err
	}
	return result.(map[entitlement.FeatureKey]string), nil
}
