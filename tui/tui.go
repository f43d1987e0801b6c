// Package tui provides the interactive palette browser implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Path is the token file to browse.
	Path string
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
