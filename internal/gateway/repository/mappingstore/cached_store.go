package mappingstore

import (
	"context"
	"strings"
	"time"

	memcache "archemap/internal/cache/memory"
	"archemap/internal/gateway/model"
)

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:        2 * time.Minute,
		MaxEntries: 2048,
	}
}

// CachedStore fronts a Store with an in-process LRU-TTL read cache.
type CachedStore struct {
	origin  Store
	records *memcache.LRUTTL[string, model.MappingRecord]
}

func NewCachedStore(origin Store, cfg CacheConfig) *CachedStore {
	def := DefaultCacheConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = def.MaxEntries
	}
	return &CachedStore{
		origin:  origin,
		records: memcache.NewLRUTTL[string, model.MappingRecord](cfg.MaxEntries, cfg.TTL),
	}
}

func (s *CachedStore) Save(ctx context.Context, rec model.MappingRecord) error {
	if err := s.origin.Save(ctx, rec); err != nil {
		return err
	}
	s.records.Set(rec.ID, rec)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, id string) (model.MappingRecord, bool, error) {
	key := strings.TrimSpace(id)
	if rec, ok := s.records.Get(key); ok {
		return rec, true, nil
	}
	rec, ok, err := s.origin.Get(ctx, key)
	if err != nil || !ok {
		return rec, ok, err
	}
	s.records.Set(key, rec)
	return rec, true, nil
}

func (s *CachedStore) List(ctx context.Context, limit int) ([]model.MappingRecord, error) {
	return s.origin.List(ctx, limit)
}

func (s *CachedStore) Close() error {
	return s.origin.Close()
}
