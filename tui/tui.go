// Package tui implements the interactive mode: URLs are resolved one after another
// while the prompt stays usable.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidresolve/vidresolve/source"
)

// Resolver resolves a single URL. resolve.Latest is the intended implementation,
// so a URL submitted while another is in flight supersedes it.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (*source.Result, error)
}

// Options configures Run.
type Options struct {
	Resolver Resolver
	// Render formats a successful result. Defaults to the result's string form.
	Render func(*source.Result) string
}

// Run starts the interactive loop and blocks until the user quits or ctx is done.
func Run(ctx context.Context, options *Options) error {
	_, err := tea.NewProgram(newBubble(ctx, options), tea.WithContext(ctx)).Run()
	return err
}
