package catalog

import (
	"context"
	"encoding/json"
	"time"

	"lumea/models"
	"lumea/utils"

	"go.uber.org/zap"
)

const (
	lookupsCacheKey = "catalog:lookups"
	lookupsCacheTTL = 15 * time.Minute
)

// GetLookups returns the hydration payload, serving from the Redis cache
// when possible. A cache failure degrades to a live read, never an error.
func (s *DefaultCatalogService) GetLookups() (*models.CatalogLookups, error) {
	ctx := context.Background()
	cacheClient := utils.GetCacheClient()

	if data, err := cacheClient.Get(ctx, lookupsCacheKey).Result(); err == nil {
		var lookups models.CatalogLookups
		if err := json.Unmarshal([]byte(data), &lookups); err == nil {
			return &lookups, nil
		}
		utils.GetLogger().Warn("corrupt catalog lookups cache entry, refetching")
	}

	categories, err := s.Repo.ListCategories()
	if err != nil {
		return nil, err
	}
	services, err := s.Repo.List("", true)
	if err != nil {
		return nil, err
	}

	lookups := models.CatalogLookups{Categories: categories, Services: services}

	if data, err := json.Marshal(lookups); err == nil {
		if err := cacheClient.Set(ctx, lookupsCacheKey, data, lookupsCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache catalog lookups", zap.Error(err))
		}
	}
	return &lookups, nil
}

// invalidateLookups drops the cached hydration payload after any catalog
// write. Booking sessions keep their own service snapshot, so in-flight
// selections are unaffected (stale ids there are dropped by the pricer).
func (s *DefaultCatalogService) invalidateLookups() {
	ctx := context.Background()
	if err := utils.GetCacheClient().Del(ctx, lookupsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate catalog lookups cache", zap.Error(err))
	}
}
