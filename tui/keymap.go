// Package tui provides the interactive palette browser implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/oklint-cli/oklint/color"
	"github.com/oklint-cli/oklint/style"
)

// statefulKeymap defines the keyboard interactions available within various browser states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	back,
	toggleRoles,
	openPicker key.Binding
}

// setState updates the active keymap configuration to match the specified browser state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "inspect"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		toggleRoles: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "roles"),
		),
		openPicker: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp(style.Fg(color.Orange)("o"), style.Fg(color.Orange)("open in picker")),
		),
	}
}

// help returns the bindings surfaced in the list footer for the current state.
func (k *statefulKeymap) help() []key.Binding {
	switch k.state {
	case rulesState:
		return []key.Binding{k.confirm, k.toggleRoles, k.quit}
	case detailState:
		return []key.Binding{k.openPicker, k.back, k.quit}
	case rolesState:
		return []key.Binding{k.back, k.quit}
	default:
		return []key.Binding{k.quit}
	}
}
