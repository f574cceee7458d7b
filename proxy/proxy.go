// Package proxy is the client side of the server-mediated resolution path.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/source"
)

// Request is the body accepted by the proxy endpoint.
type Request struct {
	URL string `json:"url"`
}

// Reply is the body returned by the proxy endpoint on success.
type Reply struct {
	Streams []*source.StreamInfo `json:"streams"`
	Note    string               `json:"note,omitempty"`
}

// Option configures a Client.
type Option func(*Client)

// WithClient sets the HTTP client used to reach the endpoint.
func WithClient(c *http.Client) Option {
	return func(p *Client) {
		p.client = c
	}
}

// Client posts URLs to a proxy endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// New returns a Client for endpoint. An empty endpoint is allowed;
// every call then fails with source.ErrConfigurationMissing.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		client:   network.Client,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != ""
}

// Resolve posts raw to the endpoint and returns its reply.
func (c *Client) Resolve(ctx context.Context, raw string) (*Reply, error) {
	if !c.Configured() {
		return nil, &source.ConfigError{Key: key.ProxyEndpoint}
	}

	payload, err := json.Marshal(Request{URL: raw})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("proxy: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := network.Do(c.client, req)
	if err != nil {
		return nil, fmt.Errorf("proxy: %w: %v", source.ErrUpstreamUnavailable, err)
	}

	if !network.OK(status) {
		return nil, &source.UpstreamError{StatusCode: status, Body: body}
	}

	var reply Reply
	if err := json.Unmarshal(body, &reply); err != nil {
		log.WithFields(logrus.Fields{"endpoint": c.endpoint}).Warnf("%v: %v", source.ErrMalformedPayload, err)
		return &Reply{Streams: []*source.StreamInfo{}}, nil
	}

	reply.Streams = source.Dedupe(reply.Streams)
	if reply.Streams == nil {
		reply.Streams = []*source.StreamInfo{}
	}

	return &reply, nil
}

// Streams is Resolve without the note.
func (c *Client) Streams(ctx context.Context, raw string) ([]*source.StreamInfo, error) {
	reply, err := c.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}

	return reply.Streams, nil
}
