package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"admin-service/aggregate"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	productRowsCachePrefix = "admin:products:v:"
	cacheVersionKey        = "admin:products:version"
)

// CacheManager caches the aggregated product rows in Redis. Writes bump
// a version counter instead of enumerating keys, so stale entries just
// expire. The category delete guard never reads from here; it always
// re-queries the store.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{redis: redis, ttl: DefaultCacheTTL}
}

// GetProductRows retrieves a cached row list for the given query.
func (cm *CacheManager) GetProductRows(ctx context.Context, query string) ([]aggregate.ProductRow, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.rowsKey(version, query)).Result()
	if err != nil {
		return nil, false
	}

	var rows []aggregate.ProductRow
	if err := json.Unmarshal([]byte(cached), &rows); err != nil {
		zap.L().Warn("Failed to unmarshal cached product rows", zap.Error(err))
		return nil, false
	}
	return rows, true
}

// SetProductRowsAsync caches a row list without blocking the response.
func (cm *CacheManager) SetProductRowsAsync(query string, rows []aggregate.ProductRow) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(rows)
		if err != nil {
			zap.L().Warn("Failed to marshal product rows for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.rowsKey(version, query), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product rows", zap.Error(err))
		}
	}()
}

// Invalidate bumps the cache version; every cached list becomes
// unreachable.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	newVersion, err := cm.redis.Incr(ctx, cacheVersionKey).Result()
	if err != nil {
		zap.L().Warn("Failed to invalidate product rows cache", zap.Error(err))
		return
	}
	zap.L().Info("Product rows cache invalidated", zap.Int64("new_version", newVersion))
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	ver, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == nil && ver > 0 {
		return ver, nil
	}
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err == nil {
			return 1, nil
		}
	}
	return 0, fmt.Errorf("failed to get cache version: %w", err)
}

func (cm *CacheManager) rowsKey(version int64, query string) string {
	return fmt.Sprintf("%s%d:q:%s", productRowsCachePrefix, version, query)
}
