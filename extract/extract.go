// Package extract harvests media stream URLs from JSON payloads whose structure is not known in advance.
package extract

import (
	"bytes"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/vidresolve/vidresolve/source"
)

// Extractor pulls stream URLs out of an upstream payload.
// A structural, per-field parser can implement it alongside Scraper.
type Extractor interface {
	Extract(payload any) []*source.StreamInfo
}

// DefaultHosts is the allow-list used by Extract.
var DefaultHosts = []string{"googlevideo.com", "youtube.com", "ytimg.com"}

var (
	urlPattern       = regexp.MustCompile(`https?:(?:\\*/){2}[^"\s]+`)
	escapedSlash     = regexp.MustCompile(`\\+/`)
	escapedAmpersand = regexp.MustCompile(`\\+u0026`)
)

// unescape reverses JSON string escaping of slashes and ampersands, at any nesting depth.
func unescape(s string) string {
	s = escapedSlash.ReplaceAllString(s, "/")
	s = escapedAmpersand.ReplaceAllString(s, "&")
	return strings.TrimRight(s, `\`)
}

// Scraper scans the serialized payload text for URLs on allow-listed hosts.
// It never fails; any anomaly yields an empty list.
type Scraper struct {
	hosts []string
}

// NewScraper returns a Scraper accepting the given hosts and their subdomains.
// With no hosts, DefaultHosts are used.
func NewScraper(hosts ...string) *Scraper {
	hosts = lo.FilterMap(hosts, func(h string, _ int) (string, bool) {
		h = strings.Trim(strings.ToLower(strings.TrimSpace(h)), ".")
		return h, h != ""
	})

	if len(hosts) == 0 {
		hosts = DefaultHosts
	}

	return &Scraper{hosts: lo.Uniq(hosts)}
}

// Hosts returns the allow-list.
func (s *Scraper) Hosts() []string {
	return s.hosts
}

// Extract returns one StreamInfo per distinct allow-listed URL found in payload, in order of first appearance.
func (s *Scraper) Extract(payload any) (streams []*source.StreamInfo) {
	defer func() {
		if recover() != nil {
			streams = []*source.StreamInfo{}
		}
	}()

	text, ok := serialize(payload)
	if !ok {
		return []*source.StreamInfo{}
	}

	seen := make(map[string]struct{})
	streams = []*source.StreamInfo{}

	for _, match := range urlPattern.FindAllString(text, -1) {
		candidate := unescape(match)
		if _, dup := seen[candidate]; dup {
			continue
		}

		if !s.Allowed(candidate) {
			continue
		}

		seen[candidate] = struct{}{}
		streams = append(streams, &source.StreamInfo{URL: candidate})
	}

	return streams
}

// Allowed reports whether raw is an absolute URL on an allow-listed host.
func (s *Scraper) Allowed(raw string) bool {
	if !source.IsAbsoluteURL(raw) {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return lo.SomeBy(s.hosts, func(allowed string) bool {
		return host == allowed || strings.HasSuffix(host, "."+allowed)
	})
}

// serialize renders payload as JSON text. Raw bytes and strings are taken as already-serialized JSON.
func serialize(payload any) (string, bool) {
	switch p := payload.(type) {
	case nil:
		return "", false
	case []byte:
		return string(p), true
	case json.RawMessage:
		return string(p), true
	case string:
		return p, true
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", false
	}

	return buf.String(), true
}

var defaultScraper = NewScraper()

// Extract runs the default Scraper over payload.
func Extract(payload any) []*source.StreamInfo {
	return defaultScraper.Extract(payload)
}
