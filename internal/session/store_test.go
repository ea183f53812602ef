package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	st := NewStore()
	s := st.Create()
	require.NotEmpty(t, s.ID)

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	st := NewStore()
	a := st.Create()
	b := st.Create()
	assert.NotEqual(t, a.ID, b.ID)

	a.Append("llama3.3", "ticket", "L1")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	st := NewStore()
	for _, id := range []string{"", "not-a-uuid", "6f1c1b6e-4a53-4d39-9a53-33c0f0b7a001"} {
		_, err := st.Get(id)
		assert.True(t, errors.Is(err, ErrNotFound), "id %q", id)
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	st := NewStore()

	s, created := st.GetOrCreate("")
	assert.True(t, created)

	again, created := st.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)
}

func TestStore_Expire(t *testing.T) {
	st := NewStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	stale := st.Create()
	now = now.Add(2 * time.Hour)
	fresh := st.Create()

	removed := st.Expire(time.Hour)
	assert.Equal(t, 1, removed)

	_, err := st.Get(stale.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = st.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestStore_ReapStopsOnCancel(t *testing.T) {
	st := NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		st.Reap(ctx, time.Millisecond, time.Hour, nil)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Reap did not return after cancel")
	}
}
