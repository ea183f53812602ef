package server_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shahar-caura/triage/internal/server"
	"github.com/stretchr/testify/assert"
)

func TestSSEHubBroadcast(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := server.NewSSEHub(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect two SSE clients.
	recs := make([]*flushRecorder, 2)
	done := make(chan int, 2)

	for i := range 2 {
		req := httptest.NewRequest("GET", "/api/events", nil)
		recs[i] = &flushRecorder{ResponseRecorder: httptest.NewRecorder()}

		go func() {
			// This blocks until context is cancelled.
			hub.ServeHTTP(recs[i], req.WithContext(ctx))
			done <- i
		}()
	}

	// Wait for clients to register.
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for SSE clients to connect")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish("models", map[string]string{"default": "sse-test-model"})

	// Wait for events to propagate.
	time.Sleep(200 * time.Millisecond)

	// Cancel context to disconnect clients.
	cancel()

	for range 2 {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for SSE clients to finish")
		}
	}

	// Both clients should have received the event.
	for i, rec := range recs {
		body := rec.Body.String()
		assert.True(t, strings.Contains(body, "event: models\ndata: {\"default\":\"sse-test-model\"}"),
			"client %d did not receive event: %s", i, body)
	}
	assert.Equal(t, 0, hub.Clients())
}

// flushRecorder wraps httptest.ResponseRecorder to implement http.Flusher.
type flushRecorder struct {
	*httptest.ResponseRecorder
}

func (f *flushRecorder) Flush() {
	// no-op for testing; data is already in the buffer.
}
