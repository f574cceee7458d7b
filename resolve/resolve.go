// Package resolve is the single entry point turning a URL into a normalized result.
package resolve

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/pixeldrain"
	"github.com/vidresolve/vidresolve/provider"
	"github.com/vidresolve/vidresolve/proxy"
	"github.com/vidresolve/vidresolve/source"
	"github.com/vidresolve/vidresolve/youtube"
)

// Strategy selects how YouTube links are resolved. Strategies never fall back to one another.
type Strategy string

const (
	// Direct queries the streams aggregation API.
	Direct Strategy = "direct"
	// Proxy goes through the server-mediated endpoint.
	Proxy Strategy = "proxy"
	// Native talks to YouTube itself.
	Native Strategy = "native"
)

const (
	NoteFacebook    = "facebook links need a proxy endpoint: set " + key.ProxyEndpoint
	NoteUnsupported = "unsupported provider"
)

// Options configure a Resolver. Zero values select the public defaults.
type Options struct {
	// Strategy for YouTube links. Empty means Direct.
	Strategy Strategy
	// Client is shared by every upstream call. Defaults to network.Client.
	Client *http.Client
	// YouTubeAPI is the aggregation API base for Direct.
	YouTubeAPI string
	// PixeldrainAPI is the pixeldrain API base for metadata.
	PixeldrainAPI string
	// ProxyEndpoint enables the proxy path. Required by the Proxy strategy and by facebook links.
	ProxyEndpoint string
}

// Resolver dispatches URLs to provider-specific resolvers.
type Resolver struct {
	strategy   Strategy
	pixeldrain source.FileResolver
	youtube    source.StreamResolver
	proxy      mo.Option[*proxy.Client]
}

// New builds a Resolver from opts.
func New(opts Options) *Resolver {
	client := opts.Client
	if client == nil {
		client = network.Client
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = Direct
	}

	var pixeldrainOpts []pixeldrain.Option
	pixeldrainOpts = append(pixeldrainOpts, pixeldrain.WithClient(client))
	if opts.PixeldrainAPI != "" {
		pixeldrainOpts = append(pixeldrainOpts, pixeldrain.WithAPI(opts.PixeldrainAPI))
	}

	r := &Resolver{
		strategy:   strategy,
		pixeldrain: pixeldrain.New(pixeldrainOpts...),
		proxy:      mo.None[*proxy.Client](),
	}

	if opts.ProxyEndpoint != "" {
		r.proxy = mo.Some(proxy.New(opts.ProxyEndpoint, proxy.WithClient(client)))
	}

	switch strategy {
	case Direct:
		youtubeOpts := []youtube.Option{youtube.WithClient(client)}
		if opts.YouTubeAPI != "" {
			youtubeOpts = append(youtubeOpts, youtube.WithAPI(opts.YouTubeAPI))
		}
		r.youtube = youtube.New(youtubeOpts...)
	case Native:
		r.youtube = youtube.NewNative(client)
	}

	return r
}

// Strategy returns the YouTube strategy in use.
func (r *Resolver) Strategy() Strategy {
	return r.strategy
}

// Resolve classifies raw and dispatches it.
//
// Unparsable or non-http(s) input fails with source.ErrInvalidInput.
// Unknown providers are not an error: the result is of KindUnsupported.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*source.Result, error) {
	u, err := source.ParseURL(raw)
	if err != nil {
		return nil, err
	}

	target := u.String()
	p := provider.Detect(target)

	log.WithFields(logrus.Fields{"provider": p.String(), "strategy": string(r.strategy)}).Debugf("resolving %s", target)

	switch p {
	case provider.Pixeldrain:
		return source.NewFile(p.String(), r.pixeldrain.Resolve(ctx, target)), nil
	case provider.YouTube:
		return r.resolveYouTube(ctx, target)
	case provider.Facebook:
		if r.proxy.IsPresent() {
			return r.viaProxy(ctx, p, target)
		}
		return source.NewUnsupported(p.String(), NoteFacebook), nil
	default:
		return source.NewUnsupported(p.String(), NoteUnsupported), nil
	}
}

func (r *Resolver) resolveYouTube(ctx context.Context, raw string) (*source.Result, error) {
	if r.strategy == Proxy {
		return r.viaProxy(ctx, provider.YouTube, raw)
	}

	if r.youtube == nil {
		return nil, fmt.Errorf("%w: unknown %s %q", source.ErrConfigurationMissing, key.YouTubeStrategy, r.strategy)
	}

	streams, err := r.youtube.Resolve(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("youtube: %w", err)
	}

	return source.NewStreams(provider.YouTube.String(), streams), nil
}

func (r *Resolver) viaProxy(ctx context.Context, p provider.Provider, raw string) (*source.Result, error) {
	client, ok := r.proxy.Get()
	if !ok {
		return nil, &source.ConfigError{Key: key.ProxyEndpoint}
	}

	reply, err := client.Resolve(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("%s via proxy: %w", p, err)
	}

	result := source.NewStreams(p.String(), reply.Streams)
	result.Note = reply.Note
	return result, nil
}
