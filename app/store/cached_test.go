package store

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_Get(t *testing.T) {
	t.Run("caches on first read, returns cached on second", func(t *testing.T) {
		cached := newTestCached(t)

		require.NoError(t, cached.Set("theme", "light"))

		// first read - loads from DB
		v, err := cached.Get("theme")
		require.NoError(t, err)
		assert.Equal(t, "light", v)

		stats := cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(0), stats.Hits)

		// second read - should hit cache
		v, err = cached.Get("theme")
		require.NoError(t, err)
		assert.Equal(t, "light", v)

		stats = cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Hits)
	})

	t.Run("invalidates cache on Set", func(t *testing.T) {
		cached := newTestCached(t)

		require.NoError(t, cached.Set("theme", "light"))
		_, err := cached.Get("theme")
		require.NoError(t, err)

		require.NoError(t, cached.Set("theme", "dark"))

		v, err := cached.Get("theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", v, "read after write must see the new value")
		assert.Equal(t, int64(2), cached.Stats().Misses)
	})

	t.Run("invalidates cache on Delete", func(t *testing.T) {
		cached := newTestCached(t)

		require.NoError(t, cached.Set("mom-mode", "true"))
		_, err := cached.Get("mom-mode")
		require.NoError(t, err)

		require.NoError(t, cached.Delete("mom-mode"))

		_, err = cached.Get("mom-mode")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		cached := newTestCached(t)
		_, err := cached.Get("nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCached_SetDuringSlowLoad(t *testing.T) {
	underlying, err := New(t.TempDir() + "/test.db")
	require.NoError(t, err)
	require.NoError(t, underlying.Set("theme", "light"))

	slow := &slowGetStore{Interface: underlying, loaded: make(chan struct{}), release: make(chan struct{})}
	cached, err := NewCached(slow, 100)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cached.Close() })

	slow.hold.Store(true)
	getDone := make(chan string, 1)
	go func() {
		v, getErr := cached.Get("theme")
		assert.NoError(t, getErr)
		getDone <- v
	}()
	<-slow.loaded // loader has read "light" and is paused

	setDone := make(chan error, 1)
	go func() { setDone <- cached.Set("theme", "dark") }()
	select {
	case err = <-setDone:
		t.Fatalf("write finished while a load was in flight: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	slow.hold.Store(false)
	close(slow.release)
	assert.Equal(t, "light", <-getDone)
	require.NoError(t, <-setDone)

	v, err := cached.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v, "value loaded before the write must not stay cached")
}

func TestCached_List(t *testing.T) {
	cached := newTestCached(t)

	require.NoError(t, cached.Set("theme", "dark"))
	require.NoError(t, cached.Set("mom-mode", "false"))

	entries, err := cached.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCached_Close(t *testing.T) {
	underlying, err := New(t.TempDir() + "/test.db")
	require.NoError(t, err)

	cached, err := NewCached(underlying, 100)
	require.NoError(t, err)

	require.NoError(t, cached.Close())

	// underlying store should be closed - operations should fail
	_, err = underlying.Get("theme")
	assert.Error(t, err)
}

func newTestCached(t *testing.T) *Cached {
	t.Helper()
	underlying, err := New(t.TempDir() + "/test.db")
	require.NoError(t, err)
	cached, err := NewCached(underlying, 100)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cached.Close() })
	return cached
}

// slowGetStore pauses Get after reading from the wrapped store while hold is set.
type slowGetStore struct {
	Interface
	hold    atomic.Bool
	loaded  chan struct{}
	release chan struct{}
}

func (s *slowGetStore) Get(key string) (string, error) {
	v, err := s.Interface.Get(key)
	if s.hold.Load() {
		s.loaded <- struct{}{}
		<-s.release
	}
	return v, err
}
