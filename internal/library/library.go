// Package library manages the content catalog (movies, series, music albums).
package library

// ContentType distinguishes movies, series, and music albums.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
	ContentTypeMusic  ContentType = "music"
)

// NewCollectionID is the sentinel SeriesID/AlbumID requesting a fresh record.
const NewCollectionID = "new"

// Entry is one episode of a series or one track of an album.
// Entries are append-only; the catalog never reorders or removes them.
type Entry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Content is a catalogued movie, series, or music album.
// Exactly one of URL (movie), Episodes (series), or Tracks (music) is
// populated, matching Type. Field tags mirror the on-disk document.
type Content struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"type"`
	Genre       string      `json:"genre"`
	Year        int         `json:"year"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	ImageHint   string      `json:"imageHint"`
	Artist      string      `json:"artist,omitempty"`
	URL         string      `json:"url,omitempty"`
	Episodes    []Entry     `json:"episodes,omitempty"`
	Tracks      []Entry     `json:"tracks,omitempty"`
}

// MovieParams describes a new movie record.
type MovieParams struct {
	Title       string
	Description string
	Genre       string
	Year        int
	ImageURL    string // optional; empty picks a placeholder
	URL         string // direct playable location
}

// EpisodeParams describes an episode appended to a series.
// When SeriesID is NewCollectionID, the series fields seed a new record.
type EpisodeParams struct {
	SeriesID string

	// New-series fields, used only when SeriesID == NewCollectionID.
	Title       string
	Description string
	Genre       string
	Year        int
	ImageURL    string

	EpisodeTitle string
	URL          string
}

// TrackParams describes a track appended to a music album.
// When AlbumID is NewCollectionID, the album fields seed a new record;
// Artist is required in that case.
type TrackParams struct {
	AlbumID string

	// New-album fields, used only when AlbumID == NewCollectionID.
	Title       string
	Artist      string
	Description string
	Genre       string
	Year        int
	ImageURL    string

	TrackTitle string
	URL        string
}
