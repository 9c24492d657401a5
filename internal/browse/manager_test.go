package browse_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrfixit/internal/browse"
)

func TestManager_GetOrCreate(t *testing.T) {
	m := browse.NewManager(failingSearcher{}, 8, time.Minute, nil)

	s, created := m.GetOrCreate("")
	require.True(t, created)
	assert.NotEmpty(t, s.ID())

	again, created := m.GetOrCreate(s.ID())
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := m.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, s.ID(), other.ID())
	assert.Equal(t, 2, m.Len())

	m.Delete(s.ID())
	_, ok := m.Get(s.ID())
	assert.False(t, ok)
}

func TestManager_SweepExpiresIdleSessions(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	m := browse.NewManager(failingSearcher{}, 8, 30*time.Minute, nil)
	m.SetClock(clock)

	idle := m.Create()
	active := m.Create()

	advance(20 * time.Minute)
	_, ok := m.Get(active.ID())
	require.True(t, ok)

	advance(15 * time.Minute)
	assert.Equal(t, 1, m.Sweep())

	_, ok = m.Get(idle.ID())
	assert.False(t, ok)
	_, ok = m.Get(active.ID())
	assert.True(t, ok)
}

func TestManager_RunStopsWithContext(t *testing.T) {
	m := browse.NewManager(failingSearcher{}, 8, 10*time.Millisecond, nil)
	m.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
