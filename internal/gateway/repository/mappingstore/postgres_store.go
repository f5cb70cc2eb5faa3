package mappingstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"sync"

	"archemap/internal/gateway/model"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore persists records in Postgres with a small LRU read cache.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, model.MappingRecord]
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, model.MappingRecord](1024)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db, cache: cache}, nil
}

func (s *PostgresStore) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS mapping_records (
  id TEXT PRIMARY KEY,
  design_name TEXT NOT NULL DEFAULT '',
  archetype TEXT NOT NULL DEFAULT 'Unknown',
  overall_confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
  payload JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_mapping_records_archetype ON mapping_records (archetype);
CREATE INDEX IF NOT EXISTS idx_mapping_records_created_at ON mapping_records (created_at);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Save(ctx context.Context, rec model.MappingRecord) error {
	if s == nil || strings.TrimSpace(rec.ID) == "" {
		return nil
	}
	if err := s.ensureSchema(); err != nil {
		return err
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO mapping_records (id, design_name, archetype, overall_confidence, payload, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id)
DO UPDATE SET design_name=EXCLUDED.design_name,
  archetype=EXCLUDED.archetype,
  overall_confidence=EXCLUDED.overall_confidence,
  payload=EXCLUDED.payload`,
		rec.ID, rec.DesignName, rec.Archetype, rec.OverallConfidence, payload, rec.CreatedAt)
	if err != nil {
		return err
	}
	s.cache.Add(rec.ID, rec)
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (model.MappingRecord, bool, error) {
	if s == nil {
		return model.MappingRecord{}, false, nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return model.MappingRecord{}, false, nil
	}
	if rec, ok := s.cache.Get(id); ok {
		return rec, true, nil
	}
	if err := s.ensureSchema(); err != nil {
		return model.MappingRecord{}, false, err
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM mapping_records WHERE id = $1`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return model.MappingRecord{}, false, nil
	}
	if err != nil {
		return model.MappingRecord{}, false, err
	}
	var rec model.MappingRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return model.MappingRecord{}, false, err
	}
	s.cache.Add(id, rec)
	return rec, true, nil
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]model.MappingRecord, error) {
	if s == nil {
		return nil, nil
	}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM mapping_records ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MappingRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec model.MappingRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
