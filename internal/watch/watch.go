// Package watch tracks per-record favorites and playback resume positions.
package watch

import "time"

// Favorite marks a catalog record the user pinned.
type Favorite struct {
	ContentID string
	AddedAt   time.Time
}

// Position is the playback resume point for one record. Entry is the
// episode or track index within the record; movies use entry 0.
type Position struct {
	ContentID string
	Entry     int
	Seconds   int
	UpdatedAt time.Time
}
