package utils

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ShiftedDaysOfWeek bool          `env:"SHIFTED_DAYS_OF_WEEK" envDefault:"false"`
	Timezone          string        `env:"TIMEZONE" envDefault:"Local"`
	CacheEnabled      bool          `env:"CACHE_ENABLED" envDefault:"false"`
	CacheURLScheme    string        `env:"CACHE_URL_SCHEME" envDefault:"redis"`
	CacheClusterURL   string        `env:"CACHE_CLUSTER_URL" envDefault:"localhost"`
	CachePort         int           `env:"CACHE_PORT" envDefault:"6379"`
	CachePassword     string        `env:"CACHE_PASSWORD" envDefault:""`
	CacheUsername     string        `env:"CACHE_USERNAME" envDefault:""`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	CacheKeyPrefix    string        `env:"CACHE_KEY_PREFIX" envDefault:"minicron"`
}

var appConfig *Config

func GetConfig(ctx context.Context) *Config {
	if appConfig != nil {
		return appConfig
	}

	err := godotenv.Load(".env")
	if err != nil {
		GetAppLogger(ctx).Warnf("Unable to load .env file. Continuing without loading it...")
	}
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	appConfig = cfg
	return appConfig
}

// LoadConfig parses a fresh Config from the environment without caching it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
