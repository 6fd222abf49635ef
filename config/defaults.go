package config

import (
	"time"

	"github.com/hostdeck/wsconnect/api"
)

// Default values for optional configuration fields.
const (
	DefaultReconnectDelay    = api.DefaultReconnectDelay
	DefaultHandshakeTimeout  = 10 * time.Second
	DefaultBackoffBase       = 1 * time.Second
	DefaultBackoffMax        = 60 * time.Second
	DefaultDiscoveryProvider = "all"
	DefaultDiscoveryTimeout  = 10 * time.Second
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisPrefix       = "hostdeck:"
	DefaultLogLevel          = "info"
)

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Connection defaults
	if c.Connection.ReconnectDelay == 0 {
		c.Connection.ReconnectDelay = DefaultReconnectDelay
	}
	if c.Connection.HandshakeTimeout == 0 {
		c.Connection.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.Connection.Backoff.Base == 0 {
		c.Connection.Backoff.Base = DefaultBackoffBase
	}
	if c.Connection.Backoff.Max == 0 {
		c.Connection.Backoff.Max = DefaultBackoffMax
	}

	// Discovery defaults
	if c.Discovery.Provider == "" {
		c.Discovery.Provider = DefaultDiscoveryProvider
	}
	if c.Discovery.Timeout == 0 {
		c.Discovery.Timeout = DefaultDiscoveryTimeout
	}

	// Redis defaults
	if c.Redis.Addr == "" {
		c.Redis.Addr = DefaultRedisAddr
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = DefaultRedisPrefix
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
