package mappingstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"archemap/internal/gateway/model"
)

// FileStore persists records to a single JSON file, loaded lazily once.
type FileStore struct {
	path string

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]model.MappingRecord
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		byID: make(map[string]model.MappingRecord),
	}
}

func (s *FileStore) ensureLoaded() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var records []model.MappingRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, rec := range records {
			if rec.ID != "" {
				s.byID[rec.ID] = rec
			}
		}
	})
}

func (s *FileStore) Save(_ context.Context, rec model.MappingRecord) error {
	if s == nil || strings.TrimSpace(rec.ID) == "" {
		return nil
	}
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rec.ID] = rec
	return s.saveLocked()
}

func (s *FileStore) Get(_ context.Context, id string) (model.MappingRecord, bool, error) {
	if s == nil {
		return model.MappingRecord{}, false, nil
	}
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[strings.TrimSpace(id)]
	return rec, ok, nil
}

func (s *FileStore) List(_ context.Context, limit int) ([]model.MappingRecord, error) {
	if s == nil {
		return nil, nil
	}
	s.ensureLoaded()
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

func (s *FileStore) Close() error { return nil }

func (s *FileStore) saveLocked() error {
	records := make([]model.MappingRecord, 0, len(s.byID))
	for _, rec := range s.byID {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}
