package config

import (
	"github.com/hostdeck/wsconnect/connection"
	"github.com/hostdeck/wsconnect/discovery"
	"github.com/hostdeck/wsconnect/dispatch"
)

// the websocket URL, either configured directly or derived from the origin
//
// returns an empty string if neither is set, discovery has to provide the endpoint then
func (c *ConnectionConfig) WebsocketEndpoint() (string, error) {
	if c.Endpoint != "" {
		return c.Endpoint, nil
	}
	if c.Origin == "" {
		return "", nil
	}

	return connection.EndpointFromOrigin(c.Origin)
}

func (c *ConnectionConfig) ReconnectPolicy() connection.ReconnectPolicy {
	if c.Backoff.Enabled {
		return &connection.ExponentialBackoff{
			Base:        c.Backoff.Base,
			Max:         c.Backoff.Max,
			Jitter:      c.Backoff.Jitter,
			MaxAttempts: c.Backoff.MaxAttempts,
		}
	}

	return &connection.FixedDelay{Delay: c.ReconnectDelay}
}

func (c *DiscoveryConfig) ProviderSelection() discovery.ProviderSelection {
	switch c.Provider {
	case "avahi":
		return discovery.ProviderSelectionAvahiOnly
	case "zeroconf":
		return discovery.ProviderSelectionZeroconfOnly
	}

	return discovery.ProviderSelectionAll
}

func (c *RedisConfig) RelayConfig() *dispatch.RedisConfig {
	return &dispatch.RedisConfig{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
		Prefix:   c.Prefix,
	}
}
