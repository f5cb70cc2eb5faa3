package mappingstore

import (
	"strings"

	"archemap/internal/gateway/config"
)

// NewFromConfig selects the backend: Postgres when a DSN is configured,
// falling back to the JSON file store (and memory when even the path is
// empty). A Postgres failure degrades rather than aborting startup; the
// returned error reports the degrade so the caller can log it, alongside
// the label of the backend actually chosen.
func NewFromConfig(cfg config.StoreConfig) (Store, string, error) {
	if dsn := strings.TrimSpace(cfg.PostgresDSN); dsn != "" {
		s, err := NewPostgresStore(dsn)
		if err == nil {
			return s, "postgres", nil
		}
		if path := strings.TrimSpace(cfg.Path); path != "" {
			return NewFileStore(path), "file", err
		}
		return NewMemoryStore(), "memory", err
	}
	if path := strings.TrimSpace(cfg.Path); path != "" {
		return NewFileStore(path), "file", nil
	}
	return NewMemoryStore(), "memory", nil
}
