package config

import "time"

// Config is the configuration of the hostdeck-tap client
type Config struct {
	Connection ConnectionConfig `yaml:"connection"`
	Discovery  DiscoveryConfig  `yaml:"discovery"`
	Redis      RedisConfig      `yaml:"redis"`
	Log        LogConfig        `yaml:"log"`
}

type ConnectionConfig struct {
	// page origin of the console, e.g. https://console.example.com
	Origin string `yaml:"origin"`
	// websocket URL, takes precedence over Origin
	Endpoint         string        `yaml:"endpoint"`
	ReconnectDelay   time.Duration `yaml:"reconnect_delay"`
	Backoff          BackoffConfig `yaml:"backoff"`
	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	// bearer token sent with the upgrade request
	Token string `yaml:"token"`
}

// BackoffConfig replaces the fixed reconnect delay if enabled
type BackoffConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Base        time.Duration `yaml:"base"`
	Max         time.Duration `yaml:"max"`
	Jitter      float64       `yaml:"jitter"`
	MaxAttempts int           `yaml:"max_attempts"`
}

type DiscoveryConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Interfaces []string `yaml:"interfaces"`
	// all, avahi or zeroconf
	Provider string        `yaml:"provider"`
	Timeout  time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}
