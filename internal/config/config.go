package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds cloud bridge settings.
type Config struct {
	// ContainerURL is the afs URL of the document container, e.g. file:///data/container or s3://bucket/container.
	ContainerURL string `env:"CLOUDBRIDGE_CONTAINER_URL"`
	// ContainerName is reported as the container display name.
	ContainerName string `env:"CLOUDBRIDGE_CONTAINER_NAME" envDefault:"CloudStore"`
	// LocalURL is where downloaded documents are materialized; empty leaves them in the container.
	LocalURL string `env:"CLOUDBRIDGE_LOCAL_URL"`
	// KVDir is the badger directory; empty keeps the key-value store in memory.
	KVDir string `env:"CLOUDBRIDGE_KV_DIR"`
	// Concurrency bounds parallel handlers; zero means unbounded.
	Concurrency int    `env:"CLOUDBRIDGE_CONCURRENCY" envDefault:"8"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Validate checks config
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	return nil
}

// Load parses Config from environment variables.
func Load() (*Config, error) {
	ret := &Config{}
	if err := ParseEnv(ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
