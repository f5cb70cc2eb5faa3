// Package mappingstore persists mapping records for audit and replay.
package mappingstore

import (
	"context"

	"archemap/internal/gateway/model"
)

// Store is the mapping-record repository contract.
type Store interface {
	Save(ctx context.Context, rec model.MappingRecord) error
	Get(ctx context.Context, id string) (model.MappingRecord, bool, error)
	List(ctx context.Context, limit int) ([]model.MappingRecord, error)
	Close() error
}
