// Package redis provides a shared mapping-record cache so multiple gateway
// replicas can serve repeat lookups without hitting the primary store.
package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"archemap/internal/gateway/model"
)

const keyPrefix = "archemap:mapping:"

type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache connects to the given redis address. The cache is
// best-effort: a failed ping returns an error so the caller can run without
// it.
func NewResultCache(ctx context.Context, addr string, ttl time.Duration) (*ResultCache, error) {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	client := redis.NewClient(&redis.Options{Addr: strings.TrimSpace(addr)})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &ResultCache{client: client, ttl: ttl}, nil
}

func (c *ResultCache) Get(ctx context.Context, id string) (model.MappingRecord, bool) {
	if c == nil || c.client == nil {
		return model.MappingRecord{}, false
	}
	data, err := c.client.Get(ctx, keyPrefix+strings.TrimSpace(id)).Bytes()
	if err != nil {
		return model.MappingRecord{}, false
	}
	var rec model.MappingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.MappingRecord{}, false
	}
	return rec, true
}

func (c *ResultCache) Set(ctx context.Context, rec model.MappingRecord) {
	if c == nil || c.client == nil || strings.TrimSpace(rec.ID) == "" {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, keyPrefix+rec.ID, data, c.ttl).Err()
}

func (c *ResultCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
