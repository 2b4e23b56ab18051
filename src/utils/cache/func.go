package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON retrieves a JSON value from Redis by key and unmarshals it into dest.
// A missing key is reported as false with a nil error.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}
	return true, nil
}

// SetJSONWithExpiry stores a JSON value in Redis with the given key and expiration time
func (c *Client) SetJSONWithExpiry(ctx context.Context, key string, value any, expiry time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, jsonData, expiry).Err(); err != nil {
		return fmt.Errorf("failed to set key %s with expiry: %w", key, err)
	}
	return nil
}
