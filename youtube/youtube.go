// Package youtube resolves YouTube links into stream variants.
//
// Resolver queries a Piped-compatible streams aggregation API.
// Native talks to YouTube directly through github.com/kkdai/youtube.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/source"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithClient sets the HTTP client used for the streams call.
func WithClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.client = c
	}
}

// WithAPI overrides the aggregation API base URL.
func WithAPI(base string) Option {
	return func(r *Resolver) {
		r.api = strings.TrimRight(base, "/")
	}
}

// Resolver fetches streams from the aggregation API. Failures of that call are returned as is.
type Resolver struct {
	client *http.Client
	api    string
}

// New returns a Resolver using network.Client and the public Piped instance unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		client: network.Client,
		api:    constant.PipedAPI,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type streamsResponse struct {
	VideoStreams []map[string]any `json:"videoStreams"`
	AudioStreams []map[string]any `json:"audioStreams"`
}

// Alternate upstream field names per attribute, preferred first.
var (
	qualityKeys = []string{"quality", "qualityLabel"}
	mimeKeys    = []string{"mimeType", "type"}
	sizeKeys    = []string{"contentLength", "size"}
)

// Resolve returns the video streams followed by the audio-only streams.
// An unextractable id fails with source.ErrInvalidInput before any request is made;
// a non-2xx response fails with *source.UpstreamError.
func (r *Resolver) Resolve(ctx context.Context, raw string) ([]*source.StreamInfo, error) {
	id, err := VideoID(raw)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/streams/%s", r.api, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: %w", err)
	}

	status, body, err := network.Do(r.client, req)
	if err != nil {
		return nil, fmt.Errorf("youtube: %w: %v", source.ErrUpstreamUnavailable, err)
	}

	if !network.OK(status) {
		return nil, &source.UpstreamError{StatusCode: status, Body: body}
	}

	logger := log.WithFields(logrus.Fields{"provider": "youtube", "id": id})

	var resp streamsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warnf("%v: %v", source.ErrMalformedPayload, err)
		return []*source.StreamInfo{}, nil
	}

	streams := make([]*source.StreamInfo, 0, len(resp.VideoStreams)+len(resp.AudioStreams))
	streams = append(streams, normalize(logger, resp.VideoStreams, false)...)
	streams = append(streams, normalize(logger, resp.AudioStreams, true)...)

	return source.Dedupe(streams), nil
}

func normalize(logger *logrus.Entry, entries []map[string]any, audioOnly bool) []*source.StreamInfo {
	return lo.FilterMap(entries, func(entry map[string]any, i int) (*source.StreamInfo, bool) {
		link := cast.ToString(entry["url"])
		if !source.IsAbsoluteURL(link) {
			logger.Warnf("%v: entry %d has no usable url", source.ErrMalformedPayload, i)
			return nil, false
		}

		return &source.StreamInfo{
			URL:       link,
			Quality:   firstOf(entry, qualityKeys),
			Mime:      firstOf(entry, mimeKeys),
			Size:      firstOf(entry, sizeKeys),
			AudioOnly: audioOnly,
		}, true
	})
}

// firstOf returns the first non-empty value among keys, coerced to a string.
func firstOf(entry map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := entry[k]
		if !ok || v == nil {
			continue
		}

		if s, err := cast.ToStringE(v); err == nil && s != "" {
			return s
		}
	}

	return ""
}
