// Package tui provides the interactive palette browser implementation.
package tui

type state int

const (
	rulesState state = iota
	detailState
	rolesState
)
