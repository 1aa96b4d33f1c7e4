package flashgen

import (
	"net/url"
	"strings"
)

// SourceKind classifies a URL by the extraction strategy it requires.
type SourceKind int

const (
	// KindWebPage is any URL not recognized as a video platform resource.
	KindWebPage SourceKind = iota

	// KindVideo is a URL pointing at a video with a derivable video ID.
	KindVideo
)

// String returns a human-readable name for the source kind.
func (k SourceKind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "webpage"
}

// videoHosts are the hosts that classify a URL as a video resource.
var videoHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// ClassifySource inspects the URL's host and decides which extraction
// strategy applies. Unparseable URLs classify as web pages; the web fetcher
// surfaces the real error.
func ClassifySource(rawURL string) SourceKind {
	u, err := url.Parse(rawURL)
	if err != nil {
		return KindWebPage
	}
	if videoHosts[strings.ToLower(u.Hostname())] {
		return KindVideo
	}
	return KindWebPage
}

// VideoID derives the platform-specific video ID from a video URL.
//
// For the short-link host (youtu.be) the ID is the first path segment. For
// the main hosts the ID is read from the "v" query parameter, or from an
// /embed/{id} or /watch/{id} path. Returns EINVALID when no rule matches.
func VideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	host := strings.ToLower(u.Hostname())
	segments := splitPath(u.Path)

	if host == "youtu.be" {
		if len(segments) > 0 && segments[0] != "" {
			return segments[0], nil
		}
		return "", Errorf(EINVALID, "no video ID in short link %q", rawURL)
	}

	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}
	if len(segments) >= 2 && (segments[0] == "embed" || segments[0] == "watch") {
		return segments[1], nil
	}

	return "", Errorf(EINVALID, "could not derive video ID from %q", rawURL)
}

// splitPath splits a URL path into non-empty segments.
func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
