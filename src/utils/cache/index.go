package cache

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yashkumarverma/minicron/src/utils"
)

// Store keeps JSON documents under string keys with an expiry.
type Store interface {
	// GetJSON unmarshals the value stored at key into dest and reports
	// whether the key existed.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	// SetJSONWithExpiry marshals value and stores it at key for expiry.
	SetJSONWithExpiry(ctx context.Context, key string, value any, expiry time.Duration) error
	Close() error
}

// NewStore returns the store selected by config, or nil when caching is
// disabled.
func NewStore(ctx context.Context, config *utils.Config) (Store, error) {
	if !config.CacheEnabled {
		return nil, nil
	}
	switch config.CacheURLScheme {
	case "redis":
		return NewClient(ctx, config)
	case "valkey":
		return NewValkeyClient(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported cache scheme %q", config.CacheURLScheme)
	}
}

func address(config *utils.Config) string {
	return net.JoinHostPort(config.CacheClusterURL, strconv.Itoa(config.CachePort))
}

// Client is a Store backed by go-redis.
type Client struct {
	client *redis.Client
}

// Ping checks that the server answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}

func NewClient(ctx context.Context, config *utils.Config) (*Client, error) {
	c := &Client{
		client: redis.NewClient(&redis.Options{
			Addr:     address(config),
			Password: config.CachePassword,
			Username: config.CacheUsername,
			DB:       0,
		}),
	}

	// Test the connection
	if err := c.Ping(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return c, nil
}
