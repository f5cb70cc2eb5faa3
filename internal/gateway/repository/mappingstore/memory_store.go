package mappingstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"archemap/internal/gateway/model"
)

// MemoryStore keeps records in process memory. Used by tests and as the
// default when no backend is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]model.MappingRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]model.MappingRecord)}
}

func (s *MemoryStore) Save(_ context.Context, rec model.MappingRecord) error {
	if s == nil || strings.TrimSpace(rec.ID) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rec.ID] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (model.MappingRecord, bool, error) {
	if s == nil {
		return model.MappingRecord{}, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[strings.TrimSpace(id)]
	return rec, ok, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]model.MappingRecord, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MappingRecord, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
