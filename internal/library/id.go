package library

import (
	"math/rand/v2"
	"strings"
)

// idAlphabet is base-36, matching lowercase alphanumeric id suffixes.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idSuffixLen gives 36^9 possible suffixes per type. Collisions are
// accepted as negligible at personal-library scale; ids are not
// re-checked against the existing document.
const idSuffixLen = 9

var idPrefixes = map[ContentType]string{
	ContentTypeMovie:  "mov",
	ContentTypeSeries: "ser",
	ContentTypeMusic:  "mus",
}

// NewID generates a catalog id of the form "<prefix>-<random suffix>".
func NewID(t ContentType) string {
	var b strings.Builder
	b.WriteString(idPrefixes[t])
	b.WriteByte('-')
	for range idSuffixLen {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}
