package cache

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Live(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping redis cache test. Set REDIS_URL to run.")
	}

	c, err := NewRedisCache(RedisConfig{URL: url, Prefix: "suiscope:test:" + uuid.NewString() + ":"}, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	c.Set(ctx, "k", json.RawMessage(`{"a":1}`))

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(got))

	time.Sleep(1500 * time.Millisecond)

	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNewRedisCache_BadURL(t *testing.T) {
	_, err := NewRedisCache(RedisConfig{URL: "not-a-url"}, time.Second)
	assert.Error(t, err)
}
