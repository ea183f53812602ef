package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"
)

// PreviewLen is how many characters of a ticket the history label shows.
const PreviewLen = 50

// ErrBusy indicates a classification is already in flight for the session.
var ErrBusy = errors.New("a classification is already in progress for this session")

// ErrNotFound indicates a session or history entry does not exist.
var ErrNotFound = errors.New("not found")

// Entry is one completed classification. It is never modified after Append.
// The tier is not stored; callers derive it from RawResult and Model.
type Entry struct {
	Seq       int
	Model     string
	Ticket    string
	RawResult string
	CreatedAt time.Time
}

// Preview returns the label text used for the entry in the history list.
func (e Entry) Preview() string {
	if utf8.RuneCountInString(e.Ticket) <= PreviewLen {
		return e.Ticket + "..."
	}
	runes := []rune(e.Ticket)
	return string(runes[:PreviewLen]) + "..."
}

// Session is the state of one interactive user: an append-only history and
// a single in-flight slot.
type Session struct {
	ID        string
	CreatedAt time.Time

	busy atomic.Bool

	mu       sync.RWMutex
	history  []Entry
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, lastSeen: now}
}

// TryBegin claims the in-flight slot. It returns ErrBusy if another
// classification has not finished yet.
func (s *Session) TryBegin() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

// End releases the in-flight slot.
func (s *Session) End() { s.busy.Store(false) }

// Append records a finished classification and returns the stored entry.
func (s *Session) Append(model, ticket, rawResult string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Entry{
		Seq:       len(s.history) + 1,
		Model:     model,
		Ticket:    ticket,
		RawResult: rawResult,
		CreatedAt: time.Now(),
	}
	s.history = append(s.history, e)
	return e
}

// Entries returns the history most recent first.
func (s *Session) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.history))
	for i, e := range s.history {
		out[len(s.history)-1-i] = e
	}
	return out
}

// Get returns the entry with the given sequence number.
func (s *Session) Get(seq int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if seq < 1 || seq > len(s.history) {
		return Entry{}, ErrNotFound
	}
	return s.history[seq-1], nil
}

// Len returns the number of history entries.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}
