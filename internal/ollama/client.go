// Package ollama adapts the Ollama API client to the classifier.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"

	"github.com/shahar-caura/triage/internal/triage"
)

// ErrMalformedResponse indicates the server answered without usable content.
var ErrMalformedResponse = errors.New("malformed response from model server")

// maxErrorLen bounds how much of a server error message is surfaced, in runes.
const maxErrorLen = 512

// Client talks to an Ollama server.
type Client struct {
	baseURL *url.URL
	api     *api.Client
}

// New creates a Client for baseURL. An empty baseURL resolves OLLAMA_HOST the
// way the ollama CLI does. A zero timeout waits for the model indefinitely.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	var base *url.URL
	if baseURL == "" {
		base = envconfig.Host()
	} else {
		u, err := url.Parse(strings.TrimRight(baseURL, "/"))
		if err != nil {
			return nil, fmt.Errorf("ollama: invalid base url %q: %w", baseURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("ollama: base url %q needs a scheme and host", baseURL)
		}
		base = u
	}
	return &Client{
		baseURL: base,
		api:     api.NewClient(base, &http.Client{Timeout: timeout}),
	}, nil
}

// BaseURL returns the server address the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// Chat sends messages to model and returns the assistant reply verbatim.
func (c *Client) Chat(ctx context.Context, model string, messages []triage.Message) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: make([]api.Message, len(messages)),
		Stream:   &stream,
	}
	for i, m := range messages {
		req.Messages[i] = api.Message{Role: m.Role, Content: m.Content}
	}

	var reply strings.Builder
	err := c.api.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}
	if reply.Len() == 0 {
		return "", fmt.Errorf("%w: empty message content", ErrMalformedResponse)
	}
	return reply.String(), nil
}

// Ping checks that the server is reachable and returns the models it has pulled.
func (c *Client) Ping(ctx context.Context) ([]string, error) {
	resp, err := c.api.List(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	names := make([]string, len(resp.Models))
	for i, m := range resp.Models {
		names[i] = m.Name
	}
	return names, nil
}

func wrapError(err error) error {
	var se api.StatusError
	if errors.As(err, &se) {
		msg := se.ErrorMessage
		if msg == "" {
			msg = se.Status
		}
		return fmt.Errorf("ollama returned status %d: %s", se.StatusCode, clip(strings.TrimSpace(msg), maxErrorLen))
	}
	return fmt.Errorf("ollama: %w", err)
}

// clip shortens s to at most n runes without splitting a multi-byte character.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
