package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashkumarverma/minicron/src/utils"
)

func TestNewStore_Disabled(t *testing.T) {
	store, err := NewStore(context.Background(), &utils.Config{CacheEnabled: false})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewStore_UnknownScheme(t *testing.T) {
	_, err := NewStore(context.Background(), &utils.Config{CacheEnabled: true, CacheURLScheme: "memcached"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cache scheme")
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "localhost:6379", address(&utils.Config{CacheClusterURL: "localhost", CachePort: 6379}))
	assert.Equal(t, "[::1]:7000", address(&utils.Config{CacheClusterURL: "::1", CachePort: 7000}))
}

func TestNewClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewClient(ctx, &utils.Config{CacheClusterURL: "127.0.0.1", CachePort: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestClient_PingUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c := &Client{client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})}
	defer c.Close()
	assert.Error(t, c.Ping(ctx))
}
