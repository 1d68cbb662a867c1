// Package cache provides Redis-backed caching for expensive report queries.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultReportTTL is how long cached report payloads stay valid.
const DefaultReportTTL = 5 * time.Minute

// ReportCache stores serialized report payloads in Redis. All operations are
// best-effort: a Redis failure degrades to a cache miss, never to an error
// surfaced to the caller.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a report cache backed by the given Redis client.
// A nil client disables caching entirely.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    DefaultReportTTL,
	}
}

// NewReportCacheWithTTL creates a report cache with a custom TTL.
func NewReportCacheWithTTL(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Key builds a cache key scoped to a user, report kind and query window.
// propertyID is empty for portfolio-wide reports.
func Key(userID, kind, propertyID string, start, end time.Time) string {
	if propertyID == "" {
		propertyID = "all"
	}
	return fmt.Sprintf("report:%s:%s:%s:%s:%s",
		userID, kind, propertyID,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// Get loads a cached payload into dest. Returns false on a miss or any
// Redis/decode failure.
func (c *ReportCache) Get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("report cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("report cache payload corrupt", "key", key, "error", err)
		return false
	}

	return true
}

// Set stores a payload under the given key with the cache TTL.
func (c *ReportCache) Set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("report cache encode failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("report cache write failed", "key", key, "error", err)
	}
}

// InvalidateUser drops every cached report for the given user. Called after
// writes that change the underlying financial records.
func (c *ReportCache) InvalidateUser(ctx context.Context, userID string) {
	if c.client == nil {
		return
	}

	pattern := fmt.Sprintf("report:%s:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("report cache scan failed", "pattern", pattern, "error", err)
		return
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			slog.Warn("report cache invalidation failed", "pattern", pattern, "error", err)
		}
	}
}
