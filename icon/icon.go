// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, or Unicode
// squares depending on user preference.
package icon

import (
	"github.com/oklint-cli/oklint/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a registered UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Swatch
	Rule
	Progress
)

// icons is the global registry mapping identifiers to their variant definitions.
var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "+", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "x", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", squares: "🟨"},
	Swatch:   {emoji: "🎨", nerd: "", plain: "#", squares: "🟪"},
	Rule:     {emoji: "📏", nerd: "", plain: "-", squares: "🟦"},
	Progress: {emoji: "⏳", nerd: "", plain: "*", squares: "⬜"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
