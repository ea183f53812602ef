package triage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shahar-caura/triage/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeChat records calls and answers with a fixed reply.
type fakeChat struct {
	mu    sync.Mutex
	reply string
	err   error
	block bool
	calls []fakeCall
}

type fakeCall struct {
	model    string
	messages []Message
}

func (f *fakeChat) Chat(ctx context.Context, model string, messages []Message) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{model: model, messages: messages})
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func (f *fakeChat) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestClassifier(chat ChatClient) *Classifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClassifier(chat, DefaultCatalog(), extract.DefaultRegistry(), logger)
}

func TestClassify_Success(t *testing.T) {
	chat := &fakeChat{reply: "L2 (Intermediate). Pricing condition records need configuration."}
	c := newTestClassifier(chat)

	r, err := c.Classify(context.Background(), Request{Ticket: Examples[1], Model: "mistral"})
	require.NoError(t, err)
	assert.Equal(t, extract.L2, r.Level)
	assert.Equal(t, chat.reply, r.Reasoning)

	require.Equal(t, 1, chat.callCount())
	call := chat.calls[0]
	assert.Equal(t, "mistral", call.model)
	require.Len(t, call.messages, 1)
	assert.Equal(t, "user", call.messages[0].Role)
	assert.Contains(t, call.messages[0].Content, Examples[1])
}

func TestClassify_DefaultModel(t *testing.T) {
	chat := &fakeChat{reply: "L1"}
	c := newTestClassifier(chat)

	_, err := c.Classify(context.Background(), Request{Ticket: "password reset"})
	require.NoError(t, err)
	assert.Equal(t, "llama3.3", chat.calls[0].model)
}

func TestClassify_EmptyTicketSkipsModel(t *testing.T) {
	chat := &fakeChat{reply: "L1"}
	c := newTestClassifier(chat)

	for _, ticket := range []string{"", "   ", "\n\t "} {
		_, err := c.Classify(context.Background(), Request{Ticket: ticket, Model: "llama3.3"})
		assert.True(t, errors.Is(err, ErrEmptyTicket), "ticket %q: %v", ticket, err)
	}
	assert.Equal(t, 0, chat.callCount())
}

func TestClassify_UnknownModel(t *testing.T) {
	chat := &fakeChat{reply: "L1"}
	c := newTestClassifier(chat)

	_, err := c.Classify(context.Background(), Request{Ticket: "help", Model: "gpt-9"})
	assert.True(t, errors.Is(err, ErrUnknownModel))
	assert.Equal(t, 0, chat.callCount())
}

func TestClassify_BackendError(t *testing.T) {
	backendErr := errors.New("connection refused")
	c := newTestClassifier(&fakeChat{err: backendErr})

	_, err := c.Classify(context.Background(), Request{Ticket: "help", Model: "llama3.3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClassificationFailed))
	assert.True(t, errors.Is(err, backendErr))
}

func TestClassify_ContextCancelled(t *testing.T) {
	c := newTestClassifier(&fakeChat{block: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Classify(ctx, Request{Ticket: "help", Model: "llama3.3"})
	assert.True(t, errors.Is(err, ErrClassificationFailed))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClassify_UnparseableOutputIsUnknown(t *testing.T) {
	c := newTestClassifier(&fakeChat{reply: "I cannot decide."})

	r, err := c.Classify(context.Background(), Request{Ticket: "help", Model: "llama3.3"})
	require.NoError(t, err)
	assert.Equal(t, extract.Unknown, r.Level)
}

func TestClassify_ExamplesRoundTrip(t *testing.T) {
	replies := []string{"L1: access issue.", "Level 2 because pricing config.", "L-3 system crash.", "unsure"}
	for i, ticket := range Examples {
		for _, model := range DefaultCatalog().Names() {
			c := newTestClassifier(&fakeChat{reply: replies[i]})
			r, err := c.Classify(context.Background(), Request{Ticket: ticket, Model: model})
			require.NoError(t, err)
			assert.Contains(t, []extract.Level{extract.L1, extract.L2, extract.L3, extract.Unknown}, r.Level)
		}
	}
}

func TestReload(t *testing.T) {
	chat := &fakeChat{reply: "Answer L3. a. b. c. d. e. f. g."}
	c := newTestClassifier(chat)
	reg := c.Registry()

	_, err := c.Classify(context.Background(), Request{Ticket: "x", Model: "qwen3:8b"})
	require.True(t, errors.Is(err, ErrUnknownModel))

	c.Reload(Catalog{Models: []Model{{Name: "qwen3:8b", Policy: "tail"}}, Default: "qwen3:8b"},
		map[string]extract.Policy{"qwen3:8b": extract.Tail{}})

	assert.Same(t, reg, c.Registry(), "reload replaces the table in place")
	assert.Equal(t, "tail", reg.Policy("qwen3:8b").Name())

	r, err := c.Classify(context.Background(), Request{Ticket: "x"})
	require.NoError(t, err)
	assert.Equal(t, extract.Unknown, r.Level)
	assert.Equal(t, []string{"qwen3:8b"}, c.Catalog().Names())
}
