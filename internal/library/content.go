package library

import (
	"fmt"
	"slices"
	"strings"
)

// Query returns catalog records matching the filter. Records are sorted
// ascending by title with locale-aware collation, except for ID lookups,
// which return the matching record alone. An unreadable document yields
// an empty result, never an error.
func (s *Store) Query(f Filter) []Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readOrEmpty()

	if f.ID != "" {
		for _, c := range doc.Content {
			if c.ID == f.ID {
				return []Content{c}
			}
		}
		return nil
	}

	var out []Content
	needle := strings.ToLower(f.Query)
	for _, c := range doc.Content {
		if !f.matchesType(c.Type) {
			continue
		}
		if needle != "" && !matchesQuery(c, needle) {
			continue
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, func(a, b Content) int {
		return s.coll.CompareString(a.Title, b.Title)
	})
	return out
}

// matchesQuery reports whether the lowercased needle occurs in the
// record's title, artist, or genre.
func matchesQuery(c Content, needle string) bool {
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Artist), needle) ||
		strings.Contains(strings.ToLower(c.Genre), needle)
}

// AddMovie inserts a new movie at the front of the document and persists it.
func (s *Store) AddMovie(p MovieParams) (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readOrEmpty()

	imageURL, imageHint := ResolveImage(p.ImageURL)
	c := Content{
		ID:          NewID(ContentTypeMovie),
		Title:       p.Title,
		Type:        ContentTypeMovie,
		Genre:       p.Genre,
		Year:        p.Year,
		Description: p.Description,
		ImageURL:    imageURL,
		ImageHint:   imageHint,
		URL:         p.URL,
	}

	doc.Content = append([]Content{c}, doc.Content...)
	if err := s.writeDocument(doc); err != nil {
		return nil, err
	}
	return &c, nil
}

// AddSeriesEpisode appends one episode to a series, creating the series
// first when SeriesID is NewCollectionID. Returns ErrNotFound when the
// referenced series doesn't exist; the document is left unchanged.
func (s *Store) AddSeriesEpisode(p EpisodeParams) (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readOrEmpty()
	entry := Entry{Title: p.EpisodeTitle, URL: p.URL}

	if p.SeriesID == NewCollectionID {
		imageURL, imageHint := ResolveImage(p.ImageURL)
		c := Content{
			ID:          NewID(ContentTypeSeries),
			Title:       p.Title,
			Type:        ContentTypeSeries,
			Genre:       p.Genre,
			Year:        p.Year,
			Description: p.Description,
			ImageURL:    imageURL,
			ImageHint:   imageHint,
			Episodes:    []Entry{entry},
		}
		doc.Content = append([]Content{c}, doc.Content...)
		if err := s.writeDocument(doc); err != nil {
			return nil, err
		}
		return &c, nil
	}

	for i := range doc.Content {
		c := &doc.Content[i]
		if c.ID != p.SeriesID || c.Type != ContentTypeSeries {
			continue
		}
		c.Episodes = append(c.Episodes, entry)
		if err := s.writeDocument(doc); err != nil {
			return nil, err
		}
		out := *c
		return &out, nil
	}
	return nil, fmt.Errorf("series %s: %w", p.SeriesID, ErrNotFound)
}

// AddMusicTrack appends one track to an album, creating the album first
// when AlbumID is NewCollectionID. A new album requires an artist.
// Returns ErrNotFound when the referenced album doesn't exist.
func (s *Store) AddMusicTrack(p TrackParams) (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readOrEmpty()
	entry := Entry{Title: p.TrackTitle, URL: p.URL}

	if p.AlbumID == NewCollectionID {
		if p.Artist == "" {
			return nil, ErrArtistRequired
		}
		imageURL, imageHint := ResolveImage(p.ImageURL)
		c := Content{
			ID:          NewID(ContentTypeMusic),
			Title:       p.Title,
			Type:        ContentTypeMusic,
			Genre:       p.Genre,
			Year:        p.Year,
			Description: p.Description,
			ImageURL:    imageURL,
			ImageHint:   imageHint,
			Artist:      p.Artist,
			Tracks:      []Entry{entry},
		}
		doc.Content = append([]Content{c}, doc.Content...)
		if err := s.writeDocument(doc); err != nil {
			return nil, err
		}
		return &c, nil
	}

	for i := range doc.Content {
		c := &doc.Content[i]
		if c.ID != p.AlbumID || c.Type != ContentTypeMusic {
			continue
		}
		c.Tracks = append(c.Tracks, entry)
		if err := s.writeDocument(doc); err != nil {
			return nil, err
		}
		out := *c
		return &out, nil
	}
	return nil, fmt.Errorf("album %s: %w", p.AlbumID, ErrNotFound)
}

// DeleteByID removes the record with the given id. The flag reports
// whether a removal happened; deleting an absent id is a no-op, not an
// error, and the document is only rewritten when something was removed.
func (s *Store) DeleteByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readOrEmpty()

	kept := make([]Content, 0, len(doc.Content))
	removed := false
	for _, c := range doc.Content {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return false, nil
	}

	doc.Content = kept
	if err := s.writeDocument(doc); err != nil {
		return false, err
	}
	return true, nil
}
