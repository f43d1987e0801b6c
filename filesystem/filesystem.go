// Package filesystem routes all file IO through a swappable afero backend,
// so token files, config, logs, and caches can run against an in-memory
// filesystem in tests.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active filesystem backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches the backend to the host operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches the backend to a fresh in-memory filesystem.
// Previously written state is discarded.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
