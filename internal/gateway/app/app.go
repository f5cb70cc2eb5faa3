package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"archemap/internal/codegen"
	"archemap/internal/common/logger"
	"archemap/internal/engine"
	"archemap/internal/gateway/config"
	"archemap/internal/gateway/handler/rpc"
	"archemap/internal/gateway/server"
	mappingsvc "archemap/internal/gateway/service/mapping"
	"archemap/internal/resolve"
	"archemap/internal/schema"
)

type App struct {
	server *server.Server
	log    *zap.Logger
	closer func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	thresholds := resolve.DefaultThresholds()
	if cfg.ThresholdsPath != "" {
		t, err := resolve.LoadThresholds(cfg.ThresholdsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load thresholds: %w", err)
		}
		thresholds = t
	}

	// Dependencies
	catalog := schema.NewCatalog()
	mapper := engine.New(catalog, thresholds)

	store, closer := initStore(cfg, log)
	svc := mappingsvc.New(mapper, store, log)

	if cache := initRecordCache(cfg, log); cache != nil {
		svc = svc.WithCache(cache)
	}
	if blobs := initBlobStore(cfg, log); blobs != nil {
		svc = svc.WithBlobStore(blobs)
	}

	var cg *codegen.GeminiClient
	if cfg.Codegen.Enabled {
		cg, err = codegen.NewGeminiClient(context.Background(), cfg.Codegen.Model)
		if err != nil {
			log.Warn("codegen disabled: client init failed", zap.Error(err))
			cg = nil
		}
	}

	mappingHandler := rpc.NewMappingHandler(svc, catalog, cg)
	watchHandler := rpc.NewWatchHandler(svc.Hub(), log)

	// Routing & Server
	mux := server.NewMux(mappingHandler, watchHandler)
	srv := server.New(cfg.Port, mux, log)

	return &App{
		server: srv,
		log:    log,
		closer: closer,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if a.closer != nil {
		a.closer()
	}
	_ = a.log.Sync()
	return err
}
