package source

import (
	"fmt"
	"net/url"
	"strings"
)

// IsAbsoluteURL reports whether s parses as an http(s) URL with a host.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// ParseURL parses raw as an absolute http(s) URL, wrapping failures in ErrInvalidInput.
func ParseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidInput)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !IsAbsoluteURL(u.String()) {
		return nil, fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidInput, raw)
	}

	return u, nil
}
