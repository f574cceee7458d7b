package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/vidresolve/vidresolve/source"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Path prefixes carrying the id as the next segment.
var pathPrefixes = []string{"/shorts/", "/embed/", "/live/", "/v/"}

// VideoID extracts the video identifier from youtu.be/<id>, watch?v=<id>
// and /shorts/<id> (as well as /embed/, /live/ and /v/) URLs.
// Failures wrap source.ErrInvalidInput.
func VideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", source.ErrInvalidInput, err)
	}

	id := candidate(u)
	if id == "" {
		return "", fmt.Errorf("%w: no video id in %q", source.ErrInvalidInput, raw)
	}

	if !idPattern.MatchString(id) {
		return "", fmt.Errorf("%w: malformed video id %q", source.ErrInvalidInput, id)
	}

	return id, nil
}

func candidate(u *url.URL) string {
	if strings.EqualFold(u.Hostname(), "youtu.be") {
		return firstSegment(u.Path)
	}

	if v := u.Query().Get("v"); v != "" {
		return v
	}

	for _, prefix := range pathPrefixes {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			return firstSegment(rest)
		}
	}

	return ""
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return segment
}

// WatchURL is the canonical watch page for id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}
