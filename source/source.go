// Package source defines the domain models, resolver contracts and error taxonomy shared by every resolution path.
package source

import "context"

// StreamResolver turns a provider-matched URL into a list of fetchable stream variants.
type StreamResolver interface {
	// Resolve fetches the stream variants for raw. Failures of the required upstream call are returned.
	Resolve(ctx context.Context, raw string) ([]*StreamInfo, error)
}

// FileResolver turns a provider-matched URL into hosted file metadata.
// Implementations degrade instead of failing.
type FileResolver interface {
	Resolve(ctx context.Context, raw string) *FileMetadata
}

// StreamResolverFunc adapts a function to StreamResolver.
type StreamResolverFunc func(ctx context.Context, raw string) ([]*StreamInfo, error)

func (f StreamResolverFunc) Resolve(ctx context.Context, raw string) ([]*StreamInfo, error) {
	return f(ctx, raw)
}
