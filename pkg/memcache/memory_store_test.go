package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "short", "1", time.Second))
	require.NoError(t, s.Set(ctx, "long", "2", time.Hour))

	now = now.Add(2 * time.Second)

	_, ok, _ := s.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "long")
	assert.True(t, ok)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "a", "1", time.Second))
	require.NoError(t, s.Set(ctx, "b", "1", time.Second))
	require.NoError(t, s.Set(ctx, "c", "1", time.Hour))

	now = now.Add(time.Minute)
	assert.Equal(t, 2, s.Sweep())
	assert.Len(t, s.data, 1)
}

func TestMemoryStore_JanitorStopsWithContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.RunJanitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestMemoryStore_ExpiredReadKeepsConcurrentSet(t *testing.T) {
	ctx := context.Background()
	clock := time.Now()
	s := NewMemoryStore()

	var onTick func()
	s.now = func() time.Time {
		if f := onTick; f != nil {
			onTick = nil
			f()
		}
		return clock
	}

	require.NoError(t, s.Set(ctx, "k", "stale", time.Second))
	clock = clock.Add(2 * time.Second)

	// The fresh value lands between the read and the expiry delete.
	onTick = func() {
		require.NoError(t, s.Set(ctx, "k", "fresh", time.Hour))
	}
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh", v)
}
