package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"archemap/internal/gateway/model"
)

func TestResultCacheRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewResultCache(ctx, srv.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}
	defer c.Close()

	rec := model.MappingRecord{
		ID:                "rec-1",
		DesignName:        "card",
		Archetype:         "Card",
		OverallConfidence: 0.75,
		CreatedAt:         time.Now().UTC().Truncate(time.Second),
	}
	c.Set(ctx, rec)

	got, ok := c.Get(ctx, "rec-1")
	if !ok {
		t.Fatalf("Get missed")
	}
	if got.Archetype != "Card" || got.OverallConfidence != 0.75 {
		t.Fatalf("got %+v", got)
	}
}

func TestResultCacheExpiry(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewResultCache(ctx, srv.Addr(), time.Second)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}
	defer c.Close()

	c.Set(ctx, model.MappingRecord{ID: "rec-1"})
	srv.FastForward(2 * time.Second)

	if _, ok := c.Get(ctx, "rec-1"); ok {
		t.Fatalf("expired record returned")
	}
}

func TestResultCacheMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewResultCache(ctx, srv.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get(ctx, "nope"); ok {
		t.Fatalf("miss reported a hit")
	}
}

func TestResultCacheBadAddr(t *testing.T) {
	if _, err := NewResultCache(context.Background(), "127.0.0.1:1", time.Minute); err == nil {
		t.Fatalf("unreachable redis accepted")
	}
}
