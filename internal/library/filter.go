// Package library manages the content catalog (movies, series, music albums).
package library

// Filter specifies criteria for querying the catalog.
type Filter struct {
	// ID short-circuits all other criteria: the result is the matching
	// record as a singleton, or empty.
	ID string

	// Types keeps only records of the given types. Empty keeps all.
	Types []ContentType

	// Query is a case-insensitive substring matched against title,
	// artist, and genre.
	Query string
}

func (f Filter) matchesType(t ContentType) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, want := range f.Types {
		if t == want {
			return true
		}
	}
	return false
}
