// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Oklint is the canonical application identifier used for filesystem paths and CLI branding.
	Oklint = "oklint"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata injected at release time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = ""
	BuiltBy  = "unknown"
)
