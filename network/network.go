// Package network provides the pre-configured HTTP clients used for upstream provider communication.
package network

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vidresolve/vidresolve/constant"
)

// Client is the shared default client. Resolvers accept their own client and fall back to this one.
var Client = New(constant.DefaultTimeoutInSec * time.Second)

// New returns a client with a tuned transport and the given overall timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}

// Do sends req with browser-like default headers and reads at most constant.MaxResponseBody bytes.
// A non-2xx status is not an error; callers decide how to treat it.
func Do(client *http.Client, req *http.Request) (int, []byte, error) {
	if client == nil {
		client = Client
	}

	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constant.MaxResponseBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response: %w", err)
	}

	return resp.StatusCode, body, nil
}

// OK reports whether status is a 2xx code.
func OK(status int) bool {
	return status >= 200 && status < 300
}
