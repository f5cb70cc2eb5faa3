package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	rediscache "archemap/internal/cache/redis"
	"archemap/internal/gateway/config"
	"archemap/internal/gateway/repository/mappingstore"
	"archemap/internal/gateway/repository/skeletonblob"
	mappingsvc "archemap/internal/gateway/service/mapping"
)

// initStore builds the persistence backend from config and wraps it in the
// in-process LRU. The returned closer releases the backend connection.
func initStore(cfg *config.Config, log *zap.Logger) (mappingstore.Store, func()) {
	origin, backend, err := mappingstore.NewFromConfig(cfg.Store)
	if err != nil {
		log.Warn("postgres store unavailable, degraded to fallback",
			zap.String("backend", backend),
			zap.Error(err),
		)
	}
	log.Info("mapping store initialized",
		zap.String("backend", backend),
		zap.String("path", cfg.Store.Path),
	)
	cached := mappingstore.NewCachedStore(origin, mappingstore.DefaultCacheConfig())
	return cached, func() {
		if err := cached.Close(); err != nil {
			log.Warn("mapping store close failed", zap.Error(err))
		}
	}
}

// initRecordCache connects the shared redis cache when configured. A failed
// connection degrades to no cache rather than aborting startup.
func initRecordCache(cfg *config.Config, log *zap.Logger) mappingsvc.RecordCache {
	if !cfg.Redis.Enabled {
		return nil
	}
	ttl := time.Duration(cfg.Redis.TTLSec) * time.Second
	cache, err := rediscache.NewResultCache(context.Background(), cfg.Redis.Addr, ttl)
	if err != nil {
		log.Warn("redis cache disabled: connect failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		return nil
	}
	log.Info("redis record cache enabled", zap.String("addr", cfg.Redis.Addr))
	return cache
}

// initBlobStore connects the S3/minio skeleton store when configured.
func initBlobStore(cfg *config.Config, log *zap.Logger) mappingsvc.BlobStore {
	if !cfg.Skeleton.Enabled {
		return nil
	}
	store, err := skeletonblob.NewS3Store(skeletonblob.S3Config{
		Endpoint:  cfg.Skeleton.Endpoint,
		Region:    cfg.Skeleton.Region,
		AccessKey: cfg.Skeleton.AccessKey,
		SecretKey: cfg.Skeleton.SecretKey,
		Bucket:    cfg.Skeleton.Bucket,
		UseSSL:    cfg.Skeleton.UseSSL,
	})
	if err != nil {
		log.Warn("skeleton blob store disabled: init failed", zap.Error(err))
		return nil
	}
	log.Info("skeleton blob store enabled", zap.String("bucket", cfg.Skeleton.Bucket))
	return store
}
