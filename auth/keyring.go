// Package auth stores the server-held API key in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/vidresolve/vidresolve/constant"
	"github.com/zalando/go-keyring"
)

const user = "youtube-api-key"

// ErrNotFound means no key is stored.
var ErrNotFound = keyring.ErrNotFound

// SetAPIKey persists the key for the key-gated YouTube API.
func SetAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(constant.App, user, apiKey)
}

// GetAPIKey retrieves the stored key.
func GetAPIKey() (string, error) {
	return keyring.Get(constant.App, user)
}

// DeleteAPIKey removes the stored key.
func DeleteAPIKey() error {
	return keyring.Delete(constant.App, user)
}

// ResolveAPIKey returns configured if set, otherwise the stored key, otherwise "".
func ResolveAPIKey(configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}

	stored, err := GetAPIKey()
	if err != nil {
		return ""
	}
	return stored
}
