package library

import (
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a title to
// count as a plausible alternative to a query that matched nothing.
const suggestThreshold = 0.72

// Suggest returns up to limit catalog titles closest to the query by
// Jaro-Winkler similarity, best first. Jaro-Winkler favors shared
// prefixes, which suits media titles. Intended for "did you mean"
// hints when a text query comes back empty.
func (s *Store) Suggest(query string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}

	s.mu.Lock()
	doc := s.readOrEmpty()
	s.mu.Unlock()

	type scored struct {
		title string
		score float64
	}

	needle := strings.ToLower(query)
	var candidates []scored
	seen := make(map[string]bool)
	for _, c := range doc.Content {
		if seen[c.Title] {
			continue
		}
		seen[c.Title] = true

		score := float64(edlib.JaroWinklerSimilarity(needle, strings.ToLower(c.Title)))
		if score < suggestThreshold {
			continue
		}
		candidates = append(candidates, scored{title: c.Title, score: score})
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return strings.Compare(a.title, b.title)
		}
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.title
	}
	return out
}
