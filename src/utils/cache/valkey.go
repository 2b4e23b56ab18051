package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
	"github.com/yashkumarverma/minicron/src/utils"
)

// ValkeyClient is a Store backed by valkey-go.
type ValkeyClient struct {
	client valkey.Client
}

func NewValkeyClient(ctx context.Context, config *utils.Config) (*ValkeyClient, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{address(config)},
		Username:    config.CacheUsername,
		Password:    config.CachePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}
	return &ValkeyClient{client: client}, nil
}

func (c *ValkeyClient) Close() error {
	c.client.Close()
	return nil
}

// GetJSON retrieves a JSON value from Valkey by key and unmarshals it into dest.
func (c *ValkeyClient) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
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

// SetJSONWithExpiry stores a JSON value in Valkey. Expiry is rounded down to
// whole seconds, with a minimum of one second.
func (c *ValkeyClient) SetJSONWithExpiry(ctx context.Context, key string, value any, expiry time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	seconds := int64(expiry / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	cmd := c.client.B().Set().Key(key).Value(valkey.BinaryString(jsonData)).ExSeconds(seconds).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to set key %s with expiry: %w", key, err)
	}
	return nil
}
