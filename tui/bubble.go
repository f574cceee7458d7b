package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/source"
	"github.com/vidresolve/vidresolve/util"
)

// bubble holds the prompt and the outcome of the most recently submitted URL.
type bubble struct {
	ctx      context.Context
	resolver Resolver
	render   func(*source.Result) string
	keymap   *keymap

	inputC   textinput.Model
	spinnerC spinner.Model
	helpC    help.Model

	// pending is the URL in flight, empty when idle.
	pending string

	resolved string
	result   *source.Result
	err      error

	width int
}

// resolvedMsg carries the outcome of one submitted URL.
type resolvedMsg struct {
	raw    string
	result *source.Result
	err    error
}

func newBubble(ctx context.Context, options *Options) *bubble {
	b := &bubble{
		ctx:      ctx,
		resolver: options.Resolver,
		render:   options.Render,
		keymap:   newKeymap(),
		helpC:    help.New(),
		width:    util.TerminalWidth(80),
	}

	if b.render == nil {
		b.render = renderPlain
	}

	b.spinnerC = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(color.Purple)),
	)

	b.inputC = textinput.New()
	b.inputC.Placeholder = "https://youtu.be/..."
	b.inputC.Prompt = "> "
	b.inputC.Focus()

	return b
}

func (b *bubble) loading() bool {
	return b.pending != ""
}

func renderPlain(result *source.Result) string {
	var sb strings.Builder

	switch result.Kind {
	case source.KindStreams:
		for _, s := range result.Streams {
			sb.WriteString(s.String())
			sb.WriteString("\n")
		}
	case source.KindFile:
		sb.WriteString(result.File.String())
	default:
		sb.WriteString(result.Note)
	}

	if result.Kind == source.KindStreams && len(result.Streams) == 0 {
		_, _ = fmt.Fprintf(&sb, "no streams found%s", noteSuffix(result.Note))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func noteSuffix(note string) string {
	if note == "" {
		return ""
	}
	return ": " + note
}
