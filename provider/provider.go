// Package provider classifies URLs by the hosting service they belong to.
// Both the client-side facade and the proxy server use Detect, so classification cannot drift between them.
package provider

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Provider is the recognized class of hosting service a URL belongs to.
type Provider string

const (
	Pixeldrain Provider = "pixeldrain"
	YouTube    Provider = "youtube"
	Facebook   Provider = "facebook"
	Unknown    Provider = "unknown"
)

func (p Provider) String() string {
	return string(p)
}

// Known reports whether p is anything but Unknown.
func (p Provider) Known() bool {
	return p != Unknown
}

type rule struct {
	provider Provider
	contains []string
	equals   []string
}

// Evaluated in order; the first matching rule wins.
var rules = []rule{
	{provider: Pixeldrain, contains: []string{"pixeldrain.com"}},
	{provider: YouTube, contains: []string{"youtube.com", "yewtu.be"}, equals: []string{"youtu.be"}},
	{provider: Facebook, contains: []string{"facebook.com", "fb.watch"}},
}

// All returns every provider, Unknown last.
func All() []Provider {
	return []Provider{Pixeldrain, YouTube, Facebook, Unknown}
}

// Get finds a provider by its name.
func Get(name string) (Provider, bool) {
	return lo.Find(All(), func(p Provider) bool {
		return strings.EqualFold(string(p), strings.TrimSpace(name))
	})
}

// Detect classifies raw by its hostname. It never fails: anything unparsable is Unknown.
func Detect(raw string) Provider {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Unknown
	}

	return DetectHost(u.Hostname())
}

// DetectHost classifies a bare hostname, case-insensitively.
func DetectHost(host string) Provider {
	host = strings.ToLower(host)
	if host == "" {
		return Unknown
	}

	for _, r := range rules {
		if lo.Contains(r.equals, host) {
			return r.provider
		}

		if lo.SomeBy(r.contains, func(s string) bool { return strings.Contains(host, s) }) {
			return r.provider
		}
	}

	return Unknown
}
