package mem

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb), mr
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, RevokedTokenPrefix+"jti", "user", time.Minute))
	v, ok, err := s.Get(ctx, RevokedTokenPrefix+"jti")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user", v)

	require.NoError(t, s.Delete(ctx, RevokedTokenPrefix+"jti"))
	_, ok, err = s.Get(ctx, RevokedTokenPrefix+"jti")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Set(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)
	mr.Close()

	_, _, err := s.Get(ctx, "k")
	assert.Error(t, err)
}
