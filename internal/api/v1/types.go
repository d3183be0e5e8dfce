package v1

import (
	"time"

	"github.com/mediateca/mediateca/internal/library"
	"github.com/mediateca/mediateca/internal/tv"
)

// addContentRequest is the POST /content body. Type selects the shape:
// "movie" creates a record, "episode" and "track" append to a series or
// album (or create one when the collection id is "new").
type addContentRequest struct {
	Type string `json:"type"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	ImageURL    string `json:"imageUrl"`
	URL         string `json:"url"`

	// Episode fields.
	SeriesID     string `json:"seriesId"`
	EpisodeTitle string `json:"episodeTitle"`

	// Track fields.
	AlbumID    string `json:"albumId"`
	Artist     string `json:"artist"`
	TrackTitle string `json:"trackTitle"`
}

type listContentResponse struct {
	Items       []library.Content `json:"items"`
	Total       int               `json:"total"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

type resolveResponse struct {
	Kind     string `json:"kind"`
	EmbedID  string `json:"embedId,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
	MIME     string `json:"mime,omitempty"`
}

type listChannelsResponse struct {
	Items []tv.Channel `json:"items"`
	Total int          `json:"total"`
}

type favoriteResponse struct {
	ContentID string    `json:"contentId"`
	AddedAt   time.Time `json:"addedAt"`
}

type positionRequest struct {
	Entry   int `json:"entry"`
	Seconds int `json:"seconds"`
}

type positionResponse struct {
	ContentID string    `json:"contentId"`
	Entry     int       `json:"entry"`
	Seconds   int       `json:"seconds"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Library struct {
		Movies int `json:"movies"`
		Series int `json:"series"`
		Music  int `json:"music"`
	} `json:"library"`
}
