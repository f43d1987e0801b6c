// Package tui provides the interactive palette browser implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/oklint-cli/oklint/open"
	"github.com/oklint-cli/oklint/palette"
	"github.com/oklint-cli/oklint/report"
	"github.com/oklint-cli/oklint/style"
	"github.com/oklint-cli/oklint/tokens"
	"github.com/oklint-cli/oklint/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the browser state, including component models and the loaded audit.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	rulesC list.Model
	rolesC list.Model
	helpC  help.Model

	source   string
	doc      *tokens.Document
	results  []palette.Result
	rep      *report.Report
	selected *palette.Result

	width, height int
}

// newBubble loads the token file, runs the audit, and assembles the browser model.
func newBubble(options *Options) (*statefulBubble, error) {
	doc, err := tokens.Load(options.Path)
	if err != nil {
		return nil, err
	}

	policy := contrast.PolicyFromConfig()
	results, err := palette.Validate(doc.Palette, doc.Rules, policy)
	if err != nil {
		return nil, err
	}

	bubble := &statefulBubble{
		state:   rulesState,
		keymap:  newStatefulKeymap(),
		source:  options.Path,
		doc:     doc,
		results: results,
		rep:     report.New(options.Path, doc.Palette, results),
		helpC:   help.New(),
	}

	spacing := viper.GetInt(key.TUIItemSpacing)

	rulesDelegate := list.NewDefaultDelegate()
	rulesDelegate.SetSpacing(spacing)
	bubble.rulesC = list.New(lo.Map(results, func(r palette.Result, _ int) list.Item {
		return ruleItem{result: r}
	}), rulesDelegate, 0, 0)
	bubble.rulesC.Title = fmt.Sprintf("%s %s %s", icon.Get(icon.Rule), options.Path, summaryBadge(bubble.rep))
	bubble.rulesC.SetShowHelp(false)

	rolesDelegate := list.NewDefaultDelegate()
	rolesDelegate.SetSpacing(spacing)
	bubble.rolesC = list.New(lo.Map(doc.Palette.Roles(), func(role string, _ int) list.Item {
		c, _ := doc.Palette.Get(role)
		return roleItem{role: role, color: c.RGB.Hex(), gamut: c.InGamut}
	}), rolesDelegate, 0, 0)
	bubble.rolesC.Title = fmt.Sprintf("%s %s", icon.Get(icon.Swatch), util.Quantify(doc.Palette.Len(), "role", "roles"))
	bubble.rolesC.SetShowHelp(false)

	return bubble, nil
}

// pickerURL builds an oklch.com permalink for a color. The site expects
// lightness and alpha as percentages.
func pickerURL(c oklch.LCH) string {
	return fmt.Sprintf("https://oklch.com/#%.2f,%.4f,%.1f,%.0f", c.L*100, c.C, c.H, c.A*100)
}

func summaryBadge(r *report.Report) string {
	if r.AllPass() {
		return style.Fg(style.PassColor)("all pass")
	}
	return style.Fg(style.FailColor)(fmt.Sprintf("%d failing", r.Failed))
}

// newState transitions the browser into the specified state.
func (b *statefulBubble) newState(newState state) {
	b.state = newState
	b.keymap.setState(newState)
}

// Init implements tea.Model.
func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		frame := 2
		b.rulesC.SetSize(msg.Width-frame, msg.Height-frame)
		b.rolesC.SetSize(msg.Width-frame, msg.Height-frame)
		return b, nil

	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit

		case bubblesKey.Matches(msg, b.keymap.quit):
			// Quit is suppressed while the list filter input is active.
			if b.state == rulesState && b.rulesC.FilterState() == list.Filtering {
				break
			}
			return b, tea.Quit

		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.state == rulesState {
				if item, ok := b.rulesC.SelectedItem().(ruleItem); ok {
					result := item.result
					b.selected = &result
					b.newState(detailState)
				}
				return b, nil
			}

		case bubblesKey.Matches(msg, b.keymap.back):
			if b.state != rulesState {
				b.selected = nil
				b.newState(rulesState)
			}
			return b, nil

		case bubblesKey.Matches(msg, b.keymap.openPicker):
			if b.state == detailState && b.selected != nil {
				_ = open.Start(pickerURL(b.selected.FG.LCH))
				return b, nil
			}

		case bubblesKey.Matches(msg, b.keymap.toggleRoles):
			if b.state == rulesState && b.rulesC.FilterState() != list.Filtering {
				b.newState(rolesState)
				return b, nil
			}
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case rulesState:
		b.rulesC, cmd = b.rulesC.Update(msg)
	case rolesState:
		b.rolesC, cmd = b.rolesC.Update(msg)
	}
	return b, cmd
}
