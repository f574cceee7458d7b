// Package icon renders status symbols in the variant chosen by key.IconsVariant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/key"
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Warn
	Stream
	Audio
	File
)

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💥", plain: "✖", squares: "🟥"},
	Progress: {emoji: "👨‍💻", plain: "…", squares: "🟦"},
	Warn:     {emoji: "⚠️", plain: "!", squares: "🟨"},
	Stream:   {emoji: "🎞️", plain: "▶", squares: "🟪"},
	Audio:    {emoji: "🎧", plain: "♪", squares: "🟫"},
	File:     {emoji: "📦", plain: "■", squares: "⬜"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for i, or "" for unknown icons and variants.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
