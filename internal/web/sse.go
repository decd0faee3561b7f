package web

import (
	"log"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
)

// boardStream is the only stream served by the hub
const boardStream = "board"

// EventHub pushes board updates to connected browsers over server-sent events
type EventHub struct {
	server  *sse.Server
	clients atomic.Int64
}

// NewEventHub creates a hub with its board stream
func NewEventHub() *EventHub {
	hub := &EventHub{}
	hub.server = sse.NewWithCallback(hub.onSubscribe, hub.onUnsubscribe)
	// Browsers only need to know that something changed, never what
	hub.server.AutoReplay = false
	hub.server.Headers = map[string]string{
		"X-Accel-Buffering": "no",
	}
	hub.server.CreateStream(boardStream)
	return hub
}

func (h *EventHub) onSubscribe(streamID string, sub *sse.Subscriber) {
	log.Printf("SSE client connected to %s (%d connected)", streamID, h.clients.Add(1))
}

func (h *EventHub) onUnsubscribe(streamID string, sub *sse.Subscriber) {
	log.Printf("SSE client disconnected from %s (%d connected)", streamID, h.clients.Add(-1))
}

// Clients returns the number of connected browsers
func (h *EventHub) Clients() int {
	return int(h.clients.Load())
}

// ServeHTTP implements the http.Handler interface for SSE connections
func (h *EventHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	// Event ids are not replayable, so a reconnecting browser simply starts over
	r = r.Clone(r.Context())
	r.Header.Del("Last-Event-ID")
	query := r.URL.Query()
	query.Set("stream", boardStream)
	r.URL.RawQuery = query.Encode()

	h.server.ServeHTTP(w, r)
}

// NotifyUpdate tells every connected browser to reload the board
func (h *EventHub) NotifyUpdate() {
	h.server.Publish(boardStream, &sse.Event{
		ID:    []byte(uuid.NewString()),
		Event: []byte("update"),
		Data:  []byte("Update available"),
	})
}

// Shutdown closes all SSE connections
func (h *EventHub) Shutdown() {
	h.server.Close()
}
