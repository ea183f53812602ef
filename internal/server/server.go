package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/shahar-caura/triage/internal/extract"
	"github.com/shahar-caura/triage/internal/session"
	"github.com/shahar-caura/triage/internal/triage"
	"github.com/shahar-caura/triage/web"
)

// Server is the triage web application.
type Server struct {
	port       int
	version    string
	startTime  time.Time
	classifier *triage.Classifier
	store      *session.Store
	backend    Pinger
	sseHub     *SSEHub
	assets     fs.FS
	logger     *slog.Logger
}

// New creates a Server with the given options.
func New(port int, version string, classifier *triage.Classifier, store *session.Store, logger *slog.Logger) *Server {
	return &Server{
		port:       port,
		version:    version,
		startTime:  time.Now(),
		classifier: classifier,
		store:      store,
		sseHub:     NewSSEHub(logger),
		assets:     web.DistFS,
		logger:     logger,
	}
}

// SetBackend enables model backend reachability in the health endpoint.
func (s *Server) SetBackend(p Pinger) { s.backend = p }

// Reload swaps the model catalog and extraction policies and tells connected
// browsers about it.
func (s *Server) Reload(catalog triage.Catalog, policies map[string]extract.Policy) {
	s.classifier.Reload(catalog, policies)
	s.sseHub.Publish("models", toModelList(catalog))
}

// Handler builds the full HTTP handler tree.
func (s *Server) Handler(ctx context.Context) (http.Handler, error) {
	router, err := loadRouter(ctx)
	if err != nil {
		return nil, err
	}

	h := &Handlers{
		Version:    s.version,
		StartTime:  s.startTime,
		Logger:     s.logger,
		Classifier: s.classifier,
		Backend:    s.backend,
	}

	// Wire up generated strict handlers.
	api := http.NewServeMux()
	strictHandler := NewStrictHandlerWithOptions(h, nil, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: s.internalError,
	})
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       api,
		ErrorHandlerFunc: badRequest,
	})
	api.HandleFunc("GET /api/openapi.yaml", serveOpenAPI)

	// SSE endpoint (outside codegen and validation: the stream never ends).
	mux := http.NewServeMux()
	mux.Handle("GET /api/events", s.sseHub)
	mux.Handle("/api/", withSession(s.store, validateRequests(router, api)))

	// SPA catch-all: serves embedded static files, falls back to index.html.
	mux.Handle("/", StaticHandler(s.assets))

	return s.logRequests(mux), nil
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("api handler failed", "method", r.Method, "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler(ctx)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start listener so we can log the actual port.
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	s.logger.Info("triage server started", "addr", ln.Addr().String())

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
