package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/resolve"
)

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.helpC.Width = msg.Width
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.clear):
			b.result, b.err, b.resolved = nil, nil, ""
			return b, nil
		case key.Matches(msg, b.keymap.resolve):
			return b, b.submit(b.inputC.Value())
		}
	case resolvedMsg:
		return b, b.finish(msg)
	case spinner.TickMsg:
		if !b.loading() {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

// submit starts resolving raw. A URL still in flight is superseded, not awaited.
func (b *bubble) submit(raw string) tea.Cmd {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	wasLoading := b.loading()
	b.pending = raw
	b.inputC.Reset()

	if wasLoading {
		return b.resolve(raw)
	}
	return tea.Batch(b.spinnerC.Tick, b.resolve(raw))
}

func (b *bubble) resolve(raw string) tea.Cmd {
	return func() tea.Msg {
		result, err := b.resolver.Resolve(b.ctx, raw)
		return resolvedMsg{raw: raw, result: result, err: err}
	}
}

// finish records msg unless a newer submission made it stale.
func (b *bubble) finish(msg resolvedMsg) tea.Cmd {
	if errors.Is(msg.err, resolve.ErrSuperseded) || msg.raw != b.pending {
		log.Debugf("dropping stale result for %s", msg.raw)
		return nil
	}

	b.pending = ""
	b.resolved = msg.raw
	b.result, b.err = msg.result, msg.err

	if msg.err != nil {
		log.Warnf("resolving %s: %v", msg.raw, msg.err)
	}

	return nil
}
