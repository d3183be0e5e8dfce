// Package playback decides which player surface a media URL should use.
package playback

import (
	"net/url"
	"path"
	"strings"
)

// Kind names a player surface.
type Kind string

const (
	// KindNone means there is nothing to play (empty URL).
	KindNone Kind = "none"
	// KindEmbed means an embeddable video host rendered in an iframe.
	KindEmbed Kind = "embed"
	// KindAudio means a native audio element.
	KindAudio Kind = "audio"
	// KindVideo means a native video element.
	KindVideo Kind = "video"
	// KindUnsupported means no known surface can play the URL.
	KindUnsupported Kind = "unsupported"
)

// Playback is the chosen surface for a URL.
type Playback struct {
	Kind    Kind
	EmbedID string // resource id on the embeddable host, set for KindEmbed
}

// localFilesPrefix marks paths served straight from the local media root;
// those always get the native video element regardless of extension.
const localFilesPrefix = "/files/"

var audioExts = extSet("mp3", "wav", "ogg", "aac", "flac")

var videoExts = extSet("mp4", "mkv", "avi", "webm", "mov", "flv", "wmv", "mpeg")

func extSet(exts ...string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[e] = true
	}
	return m
}

// Classify maps a media URL to a player surface. It is pure and total:
// malformed URLs fall through to the extension heuristics and the worst
// case is KindUnsupported, never an error.
func Classify(rawURL string) Playback {
	if rawURL == "" {
		return Playback{Kind: KindNone}
	}

	if id := embedID(rawURL); id != "" {
		return Playback{Kind: KindEmbed, EmbedID: id}
	}

	// Extension heuristics work on the URL path when it parses, else on
	// the raw string. Only a true trailing file extension counts.
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))

	switch {
	case audioExts[ext]:
		return Playback{Kind: KindAudio}
	case videoExts[ext] || strings.HasPrefix(p, localFilesPrefix):
		return Playback{Kind: KindVideo}
	default:
		return Playback{Kind: KindUnsupported}
	}
}

// embedID extracts the resource id from an embeddable video host URL:
// the path on the short-link domain, the v query parameter on the
// canonical domain. Empty when the URL is not an embeddable host.
func embedID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Hostname()) {
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	case "youtube.com", "www.youtube.com":
		return u.Query().Get("v")
	}
	return ""
}

// EmbedURL returns the iframe source for an embed id.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
