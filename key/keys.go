// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Contrast Policy - these keys define the minimum contrast ratios enforced per usage context.
const (
	ThresholdsBody  = "thresholds.body"
	ThresholdsLarge = "thresholds.large"
)

// Token Files - these keys govern the discovery and parsing of palette token files.
const (
	TokensPath = "tokens.path"
)

// Report Rendering - these keys define how validation results are surfaced to the caller.
const (
	ReportFormat    = "report.format"
	ReportPrecision = "report.precision"
	ReportGamut     = "report.show_gamut_warnings"
)

// History Tracking - these keys configure the persistence of past audit summaries.
const (
	HistorySaveOnCheck = "history.save_on_check"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive browser's styling and logic.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowRatios  = "tui.show_ratios"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
