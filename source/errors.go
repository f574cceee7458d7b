package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput means the URL could not be parsed or no identifier could be extracted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedProvider means the URL was classified but no strategy exists for it.
	ErrUnsupportedProvider = errors.New("unsupported provider")
	// ErrUpstreamUnavailable means a required upstream call failed.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrConfigurationMissing means a required key or endpoint is not configured.
	ErrConfigurationMissing = errors.New("configuration missing")
	// ErrMalformedPayload marks an upstream response that parsed but had missing or unexpected fields.
	// Resolvers recover from it locally.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// UpstreamError carries the status and body of a non-success upstream response.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}

	if body == "" {
		return fmt.Sprintf("%s: status %d", ErrUpstreamUnavailable, e.StatusCode)
	}

	return fmt.Sprintf("%s: status %d: %s", ErrUpstreamUnavailable, e.StatusCode, body)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// ConfigError names a missing configuration option.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s is not set", ErrConfigurationMissing, e.Key)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigurationMissing
}
