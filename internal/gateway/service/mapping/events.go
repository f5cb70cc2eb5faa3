package mapping

import "sync"

// Event is one progress notification for a mapping request, streamed to
// websocket watchers.
type Event struct {
	Type       string  `json:"type"`
	MappingID  string  `json:"mappingId"`
	Archetype  string  `json:"archetype,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Message    string  `json:"message,omitempty"`
}

const (
	EventClassified = "classified"
	EventResolved   = "resolved"
	EventSkeleton   = "skeleton"
	EventComplete   = "complete"
	EventError      = "error"
)

// Hub fans mapping events out to subscribers keyed by mapping ID.
type Hub struct {
	mu   sync.RWMutex
	subs map[string][]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string][]chan Event)}
}

// Subscribe returns a buffered event channel for the mapping ID. The channel
// closes after a terminal event (complete or error) is delivered, or when the
// subscriber calls Unsubscribe.
func (h *Hub) Subscribe(id string) <-chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[id] = append(h.subs[id], ch)
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes the subscriber's channel. Safe to call for
// a channel the hub already closed and removed via a terminal event.
func (h *Hub) Unsubscribe(id string, ch <-chan Event) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	channels := h.subs[id]
	for i, c := range channels {
		if c == ch {
			h.subs[id] = append(channels[:i], channels[i+1:]...)
			close(c)
			break
		}
	}
	if len(h.subs[id]) == 0 {
		delete(h.subs, id)
	}
}

// Publish delivers the event to all subscribers of its mapping ID. Slow
// subscribers drop events rather than block the pipeline. Terminal events
// close the subscription. Delivery and close both happen under the lock so
// a concurrent Publish can never send on a closed channel.
func (h *Hub) Publish(evt Event) {
	if h == nil {
		return
	}
	terminal := evt.Type == EventComplete || evt.Type == EventError

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[evt.MappingID] {
		select {
		case ch <- evt:
		default:
		}
		if terminal {
			close(ch)
		}
	}
	if terminal {
		delete(h.subs, evt.MappingID)
	}
}
