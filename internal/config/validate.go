package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Library.Document == "" {
		errs = append(errs, "library.document: required")
	}
	if c.TV.RefreshMinutes < 0 {
		errs = append(errs, fmt.Sprintf("tv.refresh_minutes: must not be negative, got %d", c.TV.RefreshMinutes))
	}

	if len(errs) > 0 {
		return errors.New("invalid config: " + strings.Join(errs, "; "))
	}
	return nil
}
