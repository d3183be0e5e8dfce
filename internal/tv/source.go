package tv

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Source serves the current channel list. The list is loaded via a
// Fetcher and swapped atomically; a failed refresh keeps the previous
// list so readers never see a partial document.
type Source struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu       sync.RWMutex
	channels []Channel
}

// NewSource creates a channel source over the given fetcher.
func NewSource(fetcher Fetcher, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{fetcher: fetcher, logger: logger}
}

// Refresh fetches and parses the channel document, replacing the served
// list on success.
func (s *Source) Refresh(ctx context.Context) error {
	data, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	channels, err := parseChannels(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.channels = channels
	s.mu.Unlock()

	s.logger.Info("channel list refreshed", "channels", len(channels))
	return nil
}

// List returns the channels, optionally restricted to one country code.
func (s *Source) List(country string) []Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Channel, 0, len(s.channels))
	for _, c := range s.channels {
		if country != "" && c.Country != country {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Countries returns the sorted distinct country codes with at least one
// channel.
func (s *Source) Countries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, c := range s.channels {
		if c.Country == "" || seen[c.Country] {
			continue
		}
		seen[c.Country] = true
		out = append(out, c.Country)
	}
	sort.Strings(out)
	return out
}

// Run refreshes the channel list on the given interval until the context
// is canceled. Refresh failures are logged and the previous list stays
// in service.
func (s *Source) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Error("channel refresh failed", "error", err)
			}
		}
	}
}
