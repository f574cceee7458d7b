// Package pixeldrain resolves pixeldrain.com links into file metadata.
// Metadata is best-effort: the download link is always produced, even when the info endpoint fails.
package pixeldrain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/source"
)

var idPattern = regexp.MustCompile(`^/(?:u|api/file|file)/([A-Za-z0-9_-]+)`)

// FileID extracts the file identifier from the /u/<id>, /api/file/<id> and /file/<id> shapes.
func FileID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	m := idPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// DownloadURL is the canonical download endpoint for id.
func DownloadURL(id string) string {
	return fmt.Sprintf("%s/file/%s/download", constant.PixeldrainAPI, url.PathEscape(id))
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClient sets the HTTP client used for the info call.
func WithClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.client = c
	}
}

// WithAPI overrides the API base URL used for the info call.
func WithAPI(base string) Option {
	return func(r *Resolver) {
		r.api = strings.TrimRight(base, "/")
	}
}

// Resolver queries the pixeldrain info endpoint.
type Resolver struct {
	client *http.Client
	api    string
}

// New returns a Resolver using network.Client and the public API unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		client: network.Client,
		api:    constant.PixeldrainAPI,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type info struct {
	Name *string      `json:"name"`
	Size *json.Number `json:"size"`
}

// Resolve never fails. Without an identifier the original URL is the download target;
// with one, a failed info call leaves Name and Size absent.
//
// raw must already be an absolute http(s) URL, see ResolveURL.
func (r *Resolver) Resolve(ctx context.Context, raw string) *source.FileMetadata {
	raw = strings.TrimSpace(raw)

	id, ok := FileID(raw)
	if !ok {
		return &source.FileMetadata{
			Name:        mo.None[string](),
			Size:        mo.None[int64](),
			DownloadURL: raw,
		}
	}

	file := &source.FileMetadata{
		Name:        mo.None[string](),
		Size:        mo.None[int64](),
		DownloadURL: DownloadURL(id),
	}

	logger := log.WithFields(logrus.Fields{"provider": "pixeldrain", "id": id})

	meta, err := r.info(ctx, id)
	if err != nil {
		logger.Warnf("metadata unavailable: %v", err)
		return file
	}

	if meta.Name != nil && *meta.Name != "" {
		file.Name = mo.Some(*meta.Name)
	}

	if meta.Size != nil {
		if size, err := meta.Size.Int64(); err == nil && size >= 0 {
			file.Size = mo.Some(size)
		} else {
			logger.Warnf("%v: size %q", source.ErrMalformedPayload, meta.Size.String())
		}
	}

	return file
}

// ResolveURL rejects input that is not an absolute http(s) URL with source.ErrInvalidInput,
// then behaves like Resolve.
func (r *Resolver) ResolveURL(ctx context.Context, raw string) (*source.FileMetadata, error) {
	u, err := source.ParseURL(raw)
	if err != nil {
		return nil, err
	}

	return r.Resolve(ctx, u.String()), nil
}

func (r *Resolver) info(ctx context.Context, id string) (*info, error) {
	endpoint := fmt.Sprintf("%s/file/%s/info", r.api, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	status, body, err := network.Do(r.client, req)
	if err != nil {
		return nil, err
	}

	if !network.OK(status) {
		return nil, &source.UpstreamError{StatusCode: status, Body: body}
	}

	var meta info
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrMalformedPayload, err)
	}

	return &meta, nil
}
