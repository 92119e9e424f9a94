// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration for the Teletype client.
type Config struct {
	// Server configures the connection target.
	Server ServerConfig `yaml:"server"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// ServerConfig configures the connection target.
type ServerConfig struct {
	// URL is the websocket endpoint of the chat server.
	// Default: wss://typeto.me/ws
	URL string `yaml:"url"`
}

// LogConfig configures structured logging. The TUI owns the
// terminal, so log records go to a file or nowhere.
type LogConfig struct {
	// Output is the path JSON log records are appended to.
	// Empty disables logging.
	Output string `yaml:"output"`

	// Level is the minimum record level: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no file is
// supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "wss://typeto.me/ws",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load resolves configuration from the TELETYPE_CONFIG environment
// variable. Unlike server-side components, a missing variable is not
// an error: the client is fully usable with defaults and flags.
func Load() (*Config, error) {
	path := os.Getenv("TELETYPE_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit file path, merged
// over the defaults. The file is the single source of truth for the
// values it sets; environment variables never override it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url must not be empty")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
