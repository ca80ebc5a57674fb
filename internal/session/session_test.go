package session

import (
	"context"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"futari-board/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotKey, gotVal string
		var gotTTL time.Duration
		c := &cache.FakeCache{
			SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
				gotKey = key
				gotVal = val.(string)
				gotTTL = ttl
				return redis.NewStatusResult("OK", nil)
			},
		}
		sid, err := Create(context.Background(), c, 7)
		require.NoError(t, err)
		require.Len(t, sid, 32)
		require.Equal(t, "session:"+sid, gotKey)
		require.Equal(t, "7", gotVal)
		require.Equal(t, TTL, gotTTL)
	})

	t.Run("rand error", func(t *testing.T) {
		randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
		t.Cleanup(func() { randRead = rand.Read })
		_, err := Create(context.Background(), &cache.FakeCache{}, 7)
		require.Error(t, err)
	})

	t.Run("set error", func(t *testing.T) {
		c := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("", errors.New("set"))
			},
		}
		_, err := Create(context.Background(), c, 7)
		require.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "session:abc", key)
				return redis.NewStringResult("42", nil)
			},
		}
		uid, err := Lookup(context.Background(), c, "abc")
		require.NoError(t, err)
		require.Equal(t, 42, uid)
	})

	t.Run("missing", func(t *testing.T) {
		c := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		_, err := Lookup(context.Background(), c, "abc")
		require.Error(t, err)
	})

	t.Run("garbage value", func(t *testing.T) {
		c := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("not-a-number", nil)
			},
		}
		_, err := Lookup(context.Background(), c, "abc")
		require.Error(t, err)
	})
}

func TestDestroy(t *testing.T) {
	var gotKeys []string
	c := &cache.FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			gotKeys = keys
			return redis.NewIntResult(1, nil)
		},
	}
	require.NoError(t, Destroy(context.Background(), c, "abc"))
	require.Equal(t, []string{"session:abc", "flash:abc"}, gotKeys)

	c.DelFn = func(context.Context, ...string) *redis.IntCmd {
		return redis.NewIntResult(0, errors.New("del"))
	}
	require.Error(t, Destroy(context.Background(), c, "abc"))
}

func TestFlash(t *testing.T) {
	t.Run("set and pop", func(t *testing.T) {
		stored := map[string]string{}
		c := &cache.FakeCache{
			SetFn: func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
				stored[key] = val.(string)
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				v, ok := stored[key]
				if !ok {
					return redis.NewStringResult("", redis.Nil)
				}
				return redis.NewStringResult(v, nil)
			},
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				for _, k := range keys {
					delete(stored, k)
				}
				return redis.NewIntResult(1, nil)
			},
		}
		require.NoError(t, SetFlash(context.Background(), c, "s1", Flash{Level: "success", Message: "Inventory item updated successfully!"}))

		f, ok := PopFlash(context.Background(), c, "s1")
		require.True(t, ok)
		require.Equal(t, "success", f.Level)
		require.Equal(t, "Inventory item updated successfully!", f.Message)

		_, ok = PopFlash(context.Background(), c, "s1")
		require.False(t, ok)
	})

	t.Run("message containing separator", func(t *testing.T) {
		stored := "danger|Invalid quantity or date format. Please check your input."
		c := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult(stored, nil)
			},
			DelFn: func(context.Context, ...string) *redis.IntCmd {
				return redis.NewIntResult(1, nil)
			},
		}
		f, ok := PopFlash(context.Background(), c, "s1")
		require.True(t, ok)
		require.Equal(t, "danger", f.Level)
		require.Equal(t, "Invalid quantity or date format. Please check your input.", f.Message)
	})
}
