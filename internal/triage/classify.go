package triage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shahar-caura/triage/internal/extract"
)

// ChatClient sends chat messages to a model backend and returns the reply text.
type ChatClient interface {
	Chat(ctx context.Context, model string, messages []Message) (string, error)
}

// Classifier turns tickets into tier classifications using a ChatClient.
type Classifier struct {
	chat     ChatClient
	logger   *slog.Logger
	registry *extract.Registry

	mu      sync.RWMutex
	catalog Catalog
}

// NewClassifier creates a Classifier over the given catalog and extraction registry.
func NewClassifier(chat ChatClient, catalog Catalog, registry *extract.Registry, logger *slog.Logger) *Classifier {
	if registry == nil {
		registry = extract.DefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		chat:     chat,
		logger:   logger,
		catalog:  catalog,
		registry: registry,
	}
}

// Reload swaps the model list and replaces the extraction table in place.
func (c *Classifier) Reload(catalog Catalog, policies map[string]extract.Policy) {
	c.mu.Lock()
	c.catalog = catalog
	c.mu.Unlock()
	c.registry.Replace(policies)
}

// Catalog returns the current model catalog.
func (c *Classifier) Catalog() Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

// Registry returns the extraction registry.
func (c *Classifier) Registry() *extract.Registry { return c.registry }

// Extract applies the extraction policy for model to text.
func (c *Classifier) Extract(text, model string) extract.Level {
	return c.Registry().Extract(text, model)
}

// Classify validates req, asks the model for a classification and extracts the tier.
// Blank tickets are rejected before the backend is contacted.
func (c *Classifier) Classify(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	model, err := c.Catalog().Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c.logger.Info("classifying ticket", "model", model, "ticket_len", len(req.Ticket))

	text, err := c.invoke(ctx, model, req.Ticket)
	if err != nil {
		c.logger.Warn("classification failed", "model", model, "err", err)
		return nil, err
	}

	level := c.Extract(text, model)
	c.logger.Info("ticket classified", "model", model, "level", level, "elapsed", time.Since(start).Round(time.Millisecond))
	return &Result{Level: level, Reasoning: text}, nil
}

// invoke runs the blocking backend call on its own goroutine and waits for it.
func (c *Classifier) invoke(ctx context.Context, model, ticket string) (string, error) {
	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)

	go func() {
		text, err := c.chat.Chat(ctx, model, []Message{{Role: "user", Content: BuildPrompt(ticket)}})
		done <- reply{text: text, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("%w: %w", ErrClassificationFailed, r.err)
		}
		return r.text, nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrClassificationFailed, ctx.Err())
	}
}
