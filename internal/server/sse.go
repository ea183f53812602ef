package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// event is one server-sent event, already encoded.
type event struct {
	name string
	data []byte
}

// SSEHub fans out events to connected SSE clients.
type SSEHub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[chan event]struct{}
}

// NewSSEHub creates an SSEHub with no clients.
func NewSSEHub(logger *slog.Logger) *SSEHub {
	return &SSEHub{
		logger:  logger,
		clients: make(map[chan event]struct{}),
	}
}

// Publish encodes payload as JSON and sends it to every client as the named event.
func (h *SSEHub) Publish(name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("sse: encoding event", "event", name, "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- event{name: name, data: data}:
		default:
			// Slow client; drop this event.
		}
	}
}

// Clients returns the number of connected clients.
func (h *SSEHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *SSEHub) addClient(ch chan event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ch] = struct{}{}
}

func (h *SSEHub) removeClient(ch chan event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, ch)
	close(ch)
}

// ServeHTTP implements http.Handler for SSE connections.
func (h *SSEHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan event, 32)
	h.addClient(ch)
	defer h.removeClient(ch)

	// Tell the client the stream is open before the first real event.
	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(20 * time.Second)
	defer keepalive.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-keepalive.C:
			_, _ = fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case ev := <-ch:
			_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, ev.data)
			flusher.Flush()
		}
	}
}
