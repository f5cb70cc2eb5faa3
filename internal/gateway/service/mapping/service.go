// Package mapping is the gateway service orchestrating the mapping engine:
// decode, classify, resolve, persist, and optionally emit a skeleton.
package mapping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"archemap/internal/design"
	"archemap/internal/engine"
	"archemap/internal/gateway/metrics"
	"archemap/internal/gateway/model"
	"archemap/internal/gateway/repository/mappingstore"
	"archemap/internal/skeleton"
)

// RecordCache is the optional shared cache in front of the store (redis in
// production; nil disables it).
type RecordCache interface {
	Get(ctx context.Context, id string) (model.MappingRecord, bool)
	Set(ctx context.Context, rec model.MappingRecord)
}

// BlobStore is the optional object store for emitted skeleton files.
type BlobStore interface {
	Put(ctx context.Context, mappingID, filename string, content []byte) error
}

type Service struct {
	mapper  *engine.Mapper
	emitter *skeleton.Emitter
	store   mappingstore.Store
	cache   RecordCache
	blobs   BlobStore
	hub     *Hub
	log     *zap.Logger
}

func New(mapper *engine.Mapper, store mappingstore.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		mapper:  mapper,
		emitter: skeleton.New(),
		store:   store,
		hub:     NewHub(),
		log:     log,
	}
}

// WithCache attaches the shared record cache.
func (s *Service) WithCache(c RecordCache) *Service {
	s.cache = c
	return s
}

// WithBlobStore attaches the skeleton blob store.
func (s *Service) WithBlobStore(b BlobStore) *Service {
	s.blobs = b
	return s
}

// Hub exposes the event hub for the watch handler.
func (s *Service) Hub() *Hub {
	return s.hub
}

// MapDesign runs the full pipeline over raw design JSON. The returned record
// is already persisted. Scoring outcomes (including Unknown) succeed; only
// input-contract violations error.
//
// requestID lets the caller pick the record ID up front and subscribe to the
// hub before the pipeline starts, so no progress event is missed. Empty means
// the service assigns one.
func (s *Service) MapDesign(ctx context.Context, requestID string, designJSON []byte, emitSkeleton bool) (model.MappingRecord, error) {
	start := time.Now()
	id := strings.TrimSpace(requestID)
	if id == "" {
		id = "map-" + uuid.NewString()
	}

	root, err := design.Decode(designJSON)
	if err != nil {
		metrics.MappingFailures.Inc()
		s.hub.Publish(Event{Type: EventError, MappingID: id, Message: err.Error()})
		return model.MappingRecord{}, err
	}

	verdict := s.mapper.Classify(root)
	s.hub.Publish(Event{
		Type:       EventClassified,
		MappingID:  id,
		Archetype:  verdict.Archetype.String(),
		Confidence: verdict.Confidence,
	})

	result := s.mapper.Resolve(root, verdict.Archetype)
	s.hub.Publish(Event{
		Type:       EventResolved,
		MappingID:  id,
		Archetype:  result.Archetype.String(),
		Confidence: result.OverallConfidence,
	})

	rec := model.FromResult(id, root.Name, result)
	if emitSkeleton {
		sk := s.emitter.Emit(result)
		rec.AttachSkeleton(sk)
		metrics.SkeletonEmissions.Inc()
		s.hub.Publish(Event{Type: EventSkeleton, MappingID: id, Message: sk.ComponentName})
		if s.blobs != nil {
			filename := fmt.Sprintf("%s.tsx", sk.ComponentName)
			if err := s.blobs.Put(ctx, id, filename, []byte(sk.Code)); err != nil {
				s.log.Warn("skeleton blob upload failed", zap.String("mapping_id", id), zap.Error(err))
			}
		}
	}

	if err := s.store.Save(ctx, rec); err != nil {
		s.hub.Publish(Event{Type: EventError, MappingID: id, Message: err.Error()})
		return model.MappingRecord{}, fmt.Errorf("save mapping: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, rec)
	}

	metrics.MappingRequests.WithLabelValues(rec.Archetype).Inc()
	metrics.MappingDuration.Observe(time.Since(start).Seconds())
	metrics.MappingConfidence.Observe(rec.OverallConfidence)
	s.log.Info("design mapped",
		zap.String("mapping_id", id),
		zap.String("archetype", rec.Archetype),
		zap.Float64("confidence", rec.OverallConfidence),
	)

	s.hub.Publish(Event{
		Type:       EventComplete,
		MappingID:  id,
		Archetype:  rec.Archetype,
		Confidence: rec.OverallConfidence,
	})
	return rec, nil
}

// GetMapping fetches a persisted record, preferring the shared cache.
func (s *Service) GetMapping(ctx context.Context, id string) (model.MappingRecord, bool, error) {
	if s.cache != nil {
		if rec, ok := s.cache.Get(ctx, id); ok {
			return rec, true, nil
		}
	}
	rec, ok, err := s.store.Get(ctx, id)
	if err != nil || !ok {
		return rec, ok, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, rec)
	}
	return rec, true, nil
}

// ListMappings returns recent records, newest first.
func (s *Service) ListMappings(ctx context.Context, limit int) ([]model.MappingRecord, error) {
	return s.store.List(ctx, limit)
}
