package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/style"
	"github.com/vidresolve/vidresolve/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *bubble) View() string {
	lines := []string{
		style.New().Bold(true).Foreground(color.HiPurple).Render("Resolve a link"),
		"",
		b.inputC.View(),
		"",
	}

	switch {
	case b.loading():
		lines = append(lines, b.spinnerC.View()+" "+style.Faint("Resolving "+b.pending))
	case b.err != nil:
		lines = append(lines,
			style.Faint(b.resolved),
			style.Fg(color.Red)(icon.Get(icon.Fail)+" "+b.err.Error()),
		)
	case b.result != nil:
		lines = append(lines, style.Faint(b.resolved), b.render(b.result))
	}

	lines = append(lines, "", b.helpC.View(b.keymap))

	return paddingStyle.Render(util.Wrap(strings.Join(lines, "\n"), b.width-4))
}
