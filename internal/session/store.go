package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in process memory. Nothing is persisted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a new session with a random ID.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.now())
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get finds a session by ID and marks it as recently used.
func (st *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(st.now())
	return s, nil
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if s, err := st.Get(id); err == nil {
		return s, false
	}
	return st.Create(), true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Expire drops sessions idle for longer than maxIdle and returns how many were removed.
func (st *Store) Expire(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Reap calls Expire every interval until ctx is cancelled.
func (st *Store) Reap(ctx context.Context, interval, maxIdle time.Duration, onExpire func(int)) {
	if interval <= 0 || maxIdle <= 0 {
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Expire(maxIdle); n > 0 && onExpire != nil {
				onExpire(n)
			}
		}
	}
}
