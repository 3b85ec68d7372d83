package repository

import (
	"context"
	"encoding/json"
	"time"

	"dealflow_backend/internal/analysis/domain"
	"dealflow_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// CompSource is the comparable-sales collaborator the analysis service depends on.
type CompSource interface {
	FindComparables(ctx context.Context, q CompQuery) ([]domain.ComparableSale, error)
}

// CachedCompSource is a Redis read-through cache in front of a CompSource.
// Comps for a locality change slowly, so repeated analyses of nearby subjects
// reuse the cached window instead of re-querying sales data.
//
// Cache failures degrade to the underlying source; a broken cache must never
// fail an analysis.
type CachedCompSource struct {
	inner  CompSource
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCachedCompSource wraps a CompSource with a Redis cache.
func NewCachedCompSource(inner CompSource, client *redis.Client, ttl time.Duration, log *logger.Logger) *CachedCompSource {
	return &CachedCompSource{inner: inner, client: client, ttl: ttl, log: log}
}

func (c *CachedCompSource) FindComparables(ctx context.Context, q CompQuery) ([]domain.ComparableSale, error) {
	key := q.CacheKey()

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var comps []domain.ComparableSale
		if unmarshalErr := json.Unmarshal([]byte(raw), &comps); unmarshalErr == nil {
			return comps, nil
		}
		// Corrupt entry; fall through to the source and overwrite it.
	} else if err != redis.Nil && c.log != nil {
		c.log.Warn("comps cache read failed", "key", key, "error", err)
	}

	comps, err := c.inner.FindComparables(ctx, q)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(comps); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil && c.log != nil {
			c.log.Warn("comps cache write failed", "key", key, "error", setErr)
		}
	}

	return comps, nil
}

var (
	_ CompSource = (*Repository)(nil)
	_ CompSource = (*CachedCompSource)(nil)
)
