package source

import "github.com/samber/lo"

// StreamInfo is one directly fetchable media variant.
type StreamInfo struct {
	// Absolute URL of the stream. Always set.
	URL string `json:"url"`
	// Quality label (e.g. "1080p", "128k").
	Quality string `json:"quality,omitempty"`
	// MIME type as reported upstream.
	Mime string `json:"mime,omitempty"`
	// Size as reported upstream, usually bytes.
	Size string `json:"size,omitempty"`
	// AudioOnly is set for entries with no video track.
	AudioOnly bool `json:"audioOnly"`
}

// String returns the quality label or the URL for display.
func (s *StreamInfo) String() string {
	if s.Quality != "" {
		return s.Quality
	}
	return s.URL
}

// Dedupe drops nil entries, entries without an absolute URL and repeated URLs.
// The first occurrence of each URL wins.
func Dedupe(streams []*StreamInfo) []*StreamInfo {
	valid := lo.Filter(streams, func(s *StreamInfo, _ int) bool {
		return s != nil && IsAbsoluteURL(s.URL)
	})

	return lo.UniqBy(valid, func(s *StreamInfo) string {
		return s.URL
	})
}
