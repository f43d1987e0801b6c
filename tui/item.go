// Package tui provides the interactive palette browser implementation.
package tui

import (
	"fmt"

	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/palette"
	"github.com/oklint-cli/oklint/style"
	"github.com/spf13/viper"
)

// ruleItem implements the list.Item interface, wrapping a validation result for terminal display.
type ruleItem struct {
	result palette.Result
}

// Title retrieves the primary display text for the list item.
func (t ruleItem) Title() string {
	mark := style.Fg(style.PassColor)(icon.Get(icon.Success))
	if !t.result.Pass {
		mark = style.Fg(style.FailColor)(icon.Get(icon.Fail))
	}

	return fmt.Sprintf("%s %s %s on %s",
		mark,
		style.Swatch(t.result.FG.RGB.Hex())+style.Swatch(t.result.BG.RGB.Hex()),
		style.Bold(t.result.Rule.FG),
		style.Bold(t.result.Rule.BG),
	)
}

// Description retrieves the secondary display text for the list item.
func (t ruleItem) Description() string {
	if !viper.GetBool(key.TUIShowRatios) {
		return string(t.result.Context)
	}

	comparator := "≥"
	if !t.result.Pass {
		comparator = "<"
	}
	return style.Faint(fmt.Sprintf("%.2f %s %.2f (%s)", t.result.Ratio, comparator, t.result.Threshold, t.result.Context))
}

// FilterValue exposes the searchable representation of the item.
func (t ruleItem) FilterValue() string {
	return t.result.Rule.FG + " " + t.result.Rule.BG
}

// roleItem implements the list.Item interface for palette role listing.
type roleItem struct {
	role  string
	color string
	gamut bool
}

func (t roleItem) Title() string {
	title := fmt.Sprintf("%s %s", style.Swatch(t.color), style.Bold(t.role))
	if !t.gamut {
		title += " " + style.Fg(style.WarningColor)(icon.Get(icon.Warn))
	}
	return title
}

func (t roleItem) Description() string {
	return style.Faint(t.color)
}

func (t roleItem) FilterValue() string {
	return t.role
}
