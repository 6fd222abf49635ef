package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Connection.Origin == "" && c.Connection.Endpoint == "" && !c.Discovery.Enabled {
		return errors.New("connection.origin, connection.endpoint or discovery.enabled is required")
	}

	if c.Connection.ReconnectDelay <= 0 {
		return fmt.Errorf("connection.reconnect_delay must be > 0, got %s", c.Connection.ReconnectDelay)
	}
	if c.Connection.HandshakeTimeout < 0 {
		return fmt.Errorf("connection.handshake_timeout must be >= 0, got %s", c.Connection.HandshakeTimeout)
	}

	if err := c.Connection.Backoff.validate("connection.backoff"); err != nil {
		return err
	}

	switch c.Discovery.Provider {
	case "all", "avahi", "zeroconf":
	default:
		return fmt.Errorf("discovery.provider must be one of all, avahi, zeroconf, got %q", c.Discovery.Provider)
	}
	if c.Discovery.Enabled && c.Discovery.Timeout <= 0 {
		return errors.New("discovery.timeout must be > 0")
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("redis.db must be >= 0, got %d", c.Redis.DB)
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level is invalid: %w", err)
	}

	return nil
}

func (b *BackoffConfig) validate(prefix string) error {
	if !b.Enabled {
		return nil
	}
	if b.Base <= 0 {
		return fmt.Errorf("%s.base must be > 0", prefix)
	}
	if b.Max < b.Base {
		return fmt.Errorf("%s.max (%s) cannot be lower than base (%s)", prefix, b.Max, b.Base)
	}
	if b.Jitter < 0 || b.Jitter > 1 {
		return fmt.Errorf("%s.jitter must be between 0 and 1, got %v", prefix, b.Jitter)
	}
	if b.MaxAttempts < 0 {
		return fmt.Errorf("%s.max_attempts must be >= 0", prefix)
	}
	return nil
}
