// Package server implements the server-mediated resolution endpoint.
//
// It accepts POST {"url": "..."}, classifies the URL with provider.Detect and,
// for YouTube, calls a key-gated API and harvests stream URLs from the raw response.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/extract"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/provider"
	"github.com/vidresolve/vidresolve/source"
)

const (
	NoteFacebook    = "facebook links are not supported yet: a dedicated proxy integration is required"
	NoteUnsupported = "unsupported provider"
)

// Options configure a Handler. Nothing is read from the environment.
type Options struct {
	// APIKey authorizes calls to the key-gated YouTube API. Without it YouTube requests fail with 500.
	APIKey string
	// APIURL is the key-gated endpoint. Defaults to constant.KeyedMediaAPI.
	APIURL string
	// Client is used for upstream calls. Defaults to network.Client.
	Client *http.Client
	// Extractor harvests stream URLs from the upstream response. Defaults to extract.NewScraper().
	Extractor extract.Extractor
}

// Handler serves the resolution endpoint.
type Handler struct {
	apiKey    string
	apiURL    string
	client    *http.Client
	extractor extract.Extractor
}

// New returns a Handler for opts.
func New(opts Options) *Handler {
	h := &Handler{
		apiKey:    strings.TrimSpace(opts.APIKey),
		apiURL:    opts.APIURL,
		client:    opts.Client,
		extractor: opts.Extractor,
	}

	if h.apiURL == "" {
		h.apiURL = constant.KeyedMediaAPI
	}

	if h.client == nil {
		h.client = network.Client
	}

	if h.extractor == nil {
		h.extractor = extract.NewScraper()
	}

	return h
}

type streamRef struct {
	URL string `json:"url"`
}

type reply struct {
	Streams []streamRef `json:"streams"`
	Note    string      `json:"note,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	started := time.Now()
	w.Header().Set("X-Request-Id", id)

	rec := &recorder{ResponseWriter: w, status: http.StatusOK}
	logger := log.WithFields(logrus.Fields{
		"request_id": id,
		"method":     r.Method,
		"remote":     r.RemoteAddr,
	})

	defer func() {
		if v := recover(); v != nil {
			abort(rec, logger, v)
		}

		logger.WithFields(logrus.Fields{
			"status":   rec.status,
			"duration": time.Since(started).String(),
		}).Info("request served")
	}()

	if r.Method != http.MethodPost {
		rec.Header().Set("Allow", http.MethodPost)
		plain(rec, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		URL string `json:"url"`
	}

	if err := json.NewDecoder(http.MaxBytesReader(rec, r.Body, constant.MaxRequestBody)).Decode(&req); err != nil {
		plain(rec, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	raw := strings.TrimSpace(req.URL)
	if raw == "" {
		plain(rec, http.StatusBadRequest, "missing url")
		return
	}

	p := provider.Detect(raw)
	logger = logger.WithField("provider", p.String())

	out, err := h.dispatch(r.Context(), p, raw)
	if err != nil {
		h.fail(rec, logger, err)
		return
	}

	rec.Header().Set("Content-Type", "application/json")
	rec.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(rec).Encode(out)
}

func (h *Handler) dispatch(ctx context.Context, p provider.Provider, raw string) (*reply, error) {
	switch p {
	case provider.YouTube:
		return h.youtube(ctx, raw)
	case provider.Facebook:
		return &reply{Streams: []streamRef{}, Note: NoteFacebook}, nil
	default:
		return &reply{Streams: []streamRef{}, Note: NoteUnsupported}, nil
	}
}

func (h *Handler) youtube(ctx context.Context, raw string) (*reply, error) {
	if h.apiKey == "" {
		return nil, &source.ConfigError{Key: key.ServerYouTubeAPIKey}
	}

	endpoint, err := url.Parse(h.apiURL)
	if err != nil {
		return nil, &source.ConfigError{Key: key.ServerYouTubeAPIURL}
	}

	query := endpoint.Query()
	query.Set("url", raw)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", h.apiKey)
	req.Header.Set("X-RapidAPI-Host", endpoint.Host)

	status, body, err := network.Do(h.client, req)
	if err != nil {
		return nil, err
	}

	if !network.OK(status) {
		return nil, &source.UpstreamError{StatusCode: status, Body: body}
	}

	streams := h.extractor.Extract(json.RawMessage(body))
	refs := make([]streamRef, 0, len(streams))
	for _, s := range streams {
		refs = append(refs, streamRef{URL: s.URL})
	}

	return &reply{Streams: refs}, nil
}

func (h *Handler) fail(w http.ResponseWriter, logger *logrus.Entry, err error) {
	var (
		upstream *source.UpstreamError
		config   *source.ConfigError
	)

	switch {
	case errors.As(err, &upstream):
		logger.Warnf("upstream returned %d", upstream.StatusCode)
		w.WriteHeader(upstream.StatusCode)
		_, _ = w.Write(upstream.Body)
	case errors.As(err, &config):
		logger.WithField("key", config.Key).Error("missing configuration")
		plain(w, http.StatusInternalServerError, err.Error())
	default:
		logger.Error(err)
		plain(w, http.StatusInternalServerError, err.Error())
	}
}

// abort answers 500 for a recovered panic. Once the response has started only the log records it.
func abort(rec *recorder, logger *logrus.Entry, v any) {
	if rec.written {
		logger.WithField("status", rec.status).Errorf("panic after response started: %v", v)
		return
	}

	logger.Errorf("panic: %v", v)
	plain(rec, http.StatusInternalServerError, fmt.Sprint(v))
}

func plain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = fmt.Fprintln(w, body)
}

// recorder remembers the status written for request logging.
type recorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (r *recorder) WriteHeader(status int) {
	if r.written {
		return
	}
	r.status = status
	r.written = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}
