package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type reportPayload struct {
	TotalRevenue string `json:"total_revenue"`
	NetIncome    string `json:"net_income"`
}

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewReportCache(client), server
}

func TestReportCache_SetGetRoundtrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	key := Key("user-1", "financial:cmp=false", "", start, end)

	cache.Set(ctx, key, reportPayload{TotalRevenue: "2700", NetIncome: "2100"})

	var got reportPayload
	if !cache.Get(ctx, key, &got) {
		t.Fatal("expected cache hit")
	}
	if got.TotalRevenue != "2700" || got.NetIncome != "2100" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestReportCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got reportPayload
	if cache.Get(context.Background(), "report:user-1:missing", &got) {
		t.Error("expected cache miss for unknown key")
	}
}

func TestReportCache_NilClientDisabled(t *testing.T) {
	cache := NewReportCache(nil)
	ctx := context.Background()

	cache.Set(ctx, "report:user-1:anything", reportPayload{TotalRevenue: "100"})

	var got reportPayload
	if cache.Get(ctx, "report:user-1:anything", &got) {
		t.Error("expected nil client to always miss")
	}
	cache.InvalidateUser(ctx, "user-1")
}

func TestReportCache_InvalidateUser(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	start := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)

	userKey := Key("user-1", "pnl:by=monthly:det=false", "", start, end)
	otherKey := Key("user-2", "pnl:by=monthly:det=false", "", start, end)
	cache.Set(ctx, userKey, reportPayload{TotalRevenue: "1200"})
	cache.Set(ctx, otherKey, reportPayload{TotalRevenue: "900"})

	cache.InvalidateUser(ctx, "user-1")

	var got reportPayload
	if cache.Get(ctx, userKey, &got) {
		t.Error("expected invalidated user key to miss")
	}
	if !cache.Get(ctx, otherKey, &got) {
		t.Error("expected other user's key to survive invalidation")
	}
}

func TestKey_ScopesPropertyAndWindow(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	portfolio := Key("user-1", "financial:cmp=false", "", start, end)
	if portfolio != "report:user-1:financial:cmp=false:all:2025-01-01:2025-01-31" {
		t.Errorf("unexpected portfolio key: %s", portfolio)
	}

	scoped := Key("user-1", "financial:cmp=false", "prop-1", start, end)
	if scoped == portfolio {
		t.Error("expected property-scoped key to differ from portfolio key")
	}
}
