package library

import "errors"

var (
	// ErrNotFound indicates the referenced series or album doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrWriteFailed indicates the document could not be persisted.
	// The in-memory mutation is discarded; there is no retry.
	ErrWriteFailed = errors.New("write failed")

	// ErrArtistRequired indicates a new album was submitted without an artist.
	ErrArtistRequired = errors.New("artist required for new album")
)
