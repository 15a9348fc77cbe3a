package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedThing) func() error {
		return func() error {
			loads++
			dest.ID = 7
			dest.Name = "alice"
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, load(&first)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, "alice", first.Name)
	assert.True(t, mr.Exists(UserKey(7)))

	// Second read is served from the cache; the loader does not run.
	var second cachedThing
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, load(&second)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, first, second)
}

func TestAside_CorruptEntryFallsBackToLoader(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(PostKey(3), "{not json"))

	var got cachedThing
	err := Aside(ctx, PostKey(3), &got, PostTTL, func() error {
		got.ID = 3
		got.Name = "recovered"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", got.Name)

	// The corrupt entry was replaced with the loader's result.
	raw, err := mr.Get(PostKey(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"recovered"}`, raw)
}

func TestAside_NilClientLoadsDirectly(t *testing.T) {
	SetClient(nil)

	var got cachedThing
	err := Aside(context.Background(), UserKey(1), &got, time.Minute, func() error {
		got.Name = "direct"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", got.Name)
}

func TestAside_RedisDownLoadsDirectly(t *testing.T) {
	mr := setupMiniredis(t)
	mr.Close()

	loads := 0
	var got cachedThing
	err := Aside(context.Background(), UserKey(1), &got, time.Minute, func() error {
		loads++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey(1), `{"id":1}`))
	require.NoError(t, mr.Set(PostKey(2), `{"id":2}`))

	InvalidateUser(ctx, 1)
	InvalidatePost(ctx, 2)

	assert.False(t, mr.Exists(UserKey(1)))
	assert.False(t, mr.Exists(PostKey(2)))
}
