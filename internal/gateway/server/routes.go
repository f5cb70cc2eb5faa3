package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"archemap/internal/gateway/handler/rpc"
	"archemap/internal/gateway/middleware"
)

func NewMux(
	mappingHandler *rpc.MappingHandler,
	watchHandler *rpc.WatchHandler,
) http.Handler {
	mux := http.NewServeMux()

	// RPC Handlers
	mappingHandler.Mount(mux)

	// Streaming
	mux.HandleFunc("/ws/mapping", watchHandler.HandleMappingWS)

	// Operational endpoints
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Middleware
	return middleware.CORS(mux)
}
