// Package tui provides the interactive palette browser implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/style"
	"github.com/oklint-cli/oklint/util"
)

var detailBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(style.BorderColor).
	Padding(1, 2).
	Margin(1, 0)

// View implements tea.Model.
func (b *statefulBubble) View() string {
	switch b.state {
	case detailState:
		return b.viewDetail()
	case rolesState:
		return b.rolesC.View() + "\n" + b.helpC.ShortHelpView(b.keymap.help())
	default:
		return b.rulesC.View() + "\n" + b.helpC.ShortHelpView(b.keymap.help())
	}
}

func (b *statefulBubble) viewDetail() string {
	if b.selected == nil {
		return ""
	}
	result := *b.selected

	verdict := style.Fg(style.PassColor)(icon.Get(icon.Success) + " pass")
	if !result.Pass {
		verdict = style.Fg(style.FailColor)(icon.Get(icon.Fail) + " fail")
	}

	var sb strings.Builder
	sb.WriteString(style.Title(fmt.Sprintf("%s on %s", result.Rule.FG, result.Rule.BG)))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s  ratio %.4f against threshold %.2f (%s)\n\n", verdict, result.Ratio, result.Threshold, result.Context))
	sb.WriteString(fmt.Sprintf("foreground  %s %s  %s\n", style.Swatch(result.FG.RGB.Hex()), result.FG.RGB.Hex(), style.Faint(result.FG.LCH.String())))
	sb.WriteString(fmt.Sprintf("background  %s %s  %s\n", style.Swatch(result.BG.RGB.Hex()), result.BG.RGB.Hex(), style.Faint(result.BG.LCH.String())))

	if !result.FG.InGamut || !result.BG.InGamut {
		sb.WriteString("\n")
		sb.WriteString(style.Fg(style.WarningColor)(icon.Get(icon.Warn) + " a role in this pair is outside the sRGB gamut; displayed swatches are clamped"))
	}

	width := b.width
	if width <= 0 {
		if w, _, err := util.TerminalSize(); err == nil {
			width = w
		} else {
			width = 80
		}
	}

	// Keep detail lines readable on very wide terminals.
	body := wrap.String(sb.String(), util.Min(util.Max(20, width-8), 96))
	return detailBox.Render(body) + "\n" + b.helpC.ShortHelpView(b.keymap.help())
}
