// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Library LibraryConfig `toml:"library"`
	TV      TVConfig      `toml:"tv"`
	Watch   WatchConfig   `toml:"watch"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type LibraryConfig struct {
	// Document is the path of the JSON content document.
	Document string `toml:"document"`
}

type TVConfig struct {
	// Channels is the channel document location: a local path or an
	// http(s) URL.
	Channels string `toml:"channels"`
	// RefreshMinutes is how often the channel list is reloaded.
	RefreshMinutes int `toml:"refresh_minutes"`
}

type WatchConfig struct {
	// Path is the SQLite database holding favorites and resume positions.
	Path string `toml:"path"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8480
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Library.Document == "" {
		cfg.Library.Document = "./data/db.json"
	}
	if cfg.TV.Channels == "" {
		cfg.TV.Channels = "./data/channels.json"
	}
	if cfg.TV.RefreshMinutes == 0 {
		cfg.TV.RefreshMinutes = 60
	}
	if cfg.Watch.Path == "" {
		cfg.Watch.Path = "./data/watch.db"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
