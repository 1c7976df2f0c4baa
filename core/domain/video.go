// ABOUTME: Video id derivation for recipe YouTube links
// ABOUTME: Extraction is pluggable; the default handles the common YouTube URL shapes

package domain

import (
	"net/url"
	"strings"
)

// VideoIDExtractor derives a video id from a video URL
type VideoIDExtractor interface {
	// ExtractVideoID returns the id and true, or "" and false when the URL
	// shape is not understood
	ExtractVideoID(rawURL string) (string, bool)
}

// VideoIDExtractorFunc adapts a function to VideoIDExtractor
type VideoIDExtractorFunc func(rawURL string) (string, bool)

// ExtractVideoID calls f
func (f VideoIDExtractorFunc) ExtractVideoID(rawURL string) (string, bool) {
	return f(rawURL)
}

// Path prefixes that carry the id as the next segment
var youTubePathPrefixes = []string{"/embed/", "/shorts/", "/v/", "/live/"}

// YouTubeExtractor understands watch, short-link, embed and shorts URLs
type YouTubeExtractor struct{}

// ExtractVideoID implements VideoIDExtractor
func (YouTubeExtractor) ExtractVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtu.be":
		return validVideoID(firstSegment(u.Path))
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if u.Path == "/watch" {
			return validVideoID(u.Query().Get("v"))
		}
		for _, prefix := range youTubePathPrefixes {
			if strings.HasPrefix(u.Path, prefix) {
				return validVideoID(firstSegment(strings.TrimPrefix(u.Path, prefix)))
			}
		}
	}

	return "", false
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// validVideoID accepts the URL-safe base64 alphabet YouTube uses for ids
func validVideoID(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", false
		}
	}
	return id, true
}

// DeriveVideoID applies extractor to rawURL, returning nil when rawURL is
// nil or extraction fails
func DeriveVideoID(extractor VideoIDExtractor, rawURL *string) *string {
	if rawURL == nil || extractor == nil {
		return nil
	}
	id, ok := extractor.ExtractVideoID(*rawURL)
	if !ok {
		return nil
	}
	return &id
}
