package cache_test

import (
	"carrental/infras/otel/mocks"
	"carrental/shared/cache"
	"context"
	"net"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryHook answers GET, SET and DEL from a map so no server is dialed.
type memoryHook map[string]string

func (memoryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h memoryHook) ProcessHook(_ redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		args := cmd.Args()
		key, _ := args[1].(string)

		switch c := cmd.(type) {
		case *redis.StringCmd:
			value, ok := h[key]
			if !ok {
				c.SetErr(redis.Nil)

				return redis.Nil
			}

			c.SetVal(value)
		case *redis.StatusCmd:
			switch v := args[2].(type) {
			case []byte:
				h[key] = string(v)
			case string:
				h[key] = v
			}

			c.SetVal("OK")
		case *redis.IntCmd:
			_, ok := h[key]
			delete(h, key)

			if ok {
				c.SetVal(1)
			}
		}

		return nil
	}
}

func (memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func newCache(t *testing.T) cache.RedisCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	client.AddHook(memoryHook{})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel())
}

type entry struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestRedisCache_Miss(t *testing.T) {
	c := newCache(t)

	var got entry
	err := c.Get(context.Background(), "reservation:get:missing", &got)

	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)
	assert.Equal(t, entry{}, got)
}

func TestRedisCache_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	require.NoError(t, c.Save(ctx, "reservation:get:r-1", entry{ID: "r-1", Status: "active"}, 60))

	var got entry
	require.NoError(t, c.Get(ctx, "reservation:get:r-1", &got))
	assert.Equal(t, entry{ID: "r-1", Status: "active"}, got)

	require.NoError(t, c.Delete(ctx, "reservation:get:r-1"))
	assert.ErrorIs(t, c.Get(ctx, "reservation:get:r-1", &got), cache.Nil)
}

func TestRedisCache_RawString(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	require.NoError(t, c.Save(ctx, "greeting", "hello", 60))

	var got string
	require.NoError(t, c.Get(ctx, "greeting", &got))
	assert.Equal(t, "hello", got)
}
