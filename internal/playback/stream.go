package playback

import (
	"net/url"
	"path"
	"strings"
)

// StreamMIME returns the source type handed to the in-browser player for
// a live stream URL: HLS and DASH manifests get their manifest types,
// anything else is assumed to be a plain video container.
func StreamMIME(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}

	switch ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), ".")); ext {
	case "m3u8":
		return "application/x-mpegURL"
	case "mpd":
		return "application/dash+xml"
	case "":
		return "video/mp4"
	default:
		return "video/" + ext
	}
}
