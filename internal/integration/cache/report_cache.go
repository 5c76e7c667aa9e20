// Package cache implements Redis-backed adapters for report caching and
// chat history.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// reportCache implements the adapter.ReportCache interface on Redis.
// Reports are stored as JSON under the caller's key with a TTL so stale
// reports age out on their own.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new Redis report cache instance.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached report for the key, with found=false on a miss.
func (c *reportCache) Get(ctx context.Context, key string) (*entity.Report, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	var report entity.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		// A corrupt entry is treated as a miss; the caller regenerates.
		return nil, false, nil
	}
	return &report, true, nil
}

// Set stores a report under the key.
func (c *reportCache) Set(ctx context.Context, key string, report *entity.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}
