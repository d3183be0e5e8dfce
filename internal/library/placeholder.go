package library

import "math/rand/v2"

// CustomImageHint tags records whose cover image was supplied by the user.
const CustomImageHint = "custom image"

// Placeholder is one fallback cover image from the fixed catalog.
type Placeholder struct {
	URL  string
	Hint string
}

// placeholderCatalog is the fixed set of fallback cover images assigned
// when a record is created without an image URL.
var placeholderCatalog = []Placeholder{
	{URL: "https://picsum.photos/seed/mediateca-poster-1/600/900", Hint: "abstract film poster"},
	{URL: "https://picsum.photos/seed/mediateca-poster-2/600/900", Hint: "dark cinema texture"},
	{URL: "https://picsum.photos/seed/mediateca-poster-3/600/900", Hint: "retro tv static"},
	{URL: "https://picsum.photos/seed/mediateca-poster-4/600/900", Hint: "vinyl record sleeve"},
	{URL: "https://picsum.photos/seed/mediateca-poster-5/600/900", Hint: "concert stage lights"},
	{URL: "https://picsum.photos/seed/mediateca-poster-6/600/900", Hint: "projector light beam"},
}

// Placeholders returns the fixed fallback catalog.
func Placeholders() []Placeholder {
	out := make([]Placeholder, len(placeholderCatalog))
	copy(out, placeholderCatalog)
	return out
}

// ResolveImage returns the cover image for a new record: the supplied URL
// verbatim with CustomImageHint when non-empty, otherwise a uniformly
// random placeholder from the fixed catalog.
func ResolveImage(suppliedURL string) (imageURL, imageHint string) {
	if suppliedURL != "" {
		return suppliedURL, CustomImageHint
	}
	p := placeholderCatalog[rand.IntN(len(placeholderCatalog))]
	return p.URL, p.Hint
}
