package rpc

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	mappingsvc "archemap/internal/gateway/service/mapping"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// WatchHandler streams mapping progress events over a websocket.
type WatchHandler struct {
	hub *mappingsvc.Hub
	log *zap.Logger
}

func NewWatchHandler(hub *mappingsvc.Hub, log *zap.Logger) *WatchHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WatchHandler{hub: hub, log: log}
}

// HandleMappingWS subscribes the connection to one mapping's events.
// Query: ?mapping_id=map-...
func (h *WatchHandler) HandleMappingWS(w http.ResponseWriter, r *http.Request) {
	mappingID := strings.TrimSpace(r.URL.Query().Get("mapping_id"))
	if mappingID == "" {
		http.Error(w, "mapping_id is required", http.StatusBadRequest)
		return
	}

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		h.log.Warn("watch ws set read deadline failed", zap.Error(err))
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	// Reader goroutine: drains control frames and cancels on close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events := h.hub.Subscribe(mappingID)
	defer h.hub.Unsubscribe(mappingID, events)
	ticker := time.NewTicker(watchWSPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
