// Package report renders palette validation results for humans and machines.
//
// The report is a pure projection of validator output: it performs no I/O on
// its own beyond the writer handed to it, and callers decide how to surface
// failures through the exit-code convention.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/palette"
)

// Exit-code convention for CLI wrappers.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitConfig     = 2
)

// Record is a single rule outcome in caller-facing shape.
type Record struct {
	FG        string           `json:"fg"`
	BG        string           `json:"bg"`
	FGHex     string           `json:"fg_hex"`
	BGHex     string           `json:"bg_hex"`
	Ratio     float64          `json:"ratio"`
	Threshold float64          `json:"threshold"`
	Context   contrast.Context `json:"context"`
	Pass      bool             `json:"pass"`
}

// GamutWarning flags a role whose oklch token falls outside the sRGB gamut.
type GamutWarning struct {
	Role string `json:"role"`
	// Clamped is the nearest displayable hex value.
	Clamped string `json:"clamped"`
}

// Report aggregates an audit run. Records preserve rule order.
type Report struct {
	Source        string         `json:"source,omitempty"`
	Records       []Record       `json:"records"`
	GamutWarnings []GamutWarning `json:"gamut_warnings,omitempty"`
	Passed        int            `json:"passed"`
	Failed        int            `json:"failed"`
}

// New builds a report from validator results. The palette is consulted for
// out-of-gamut roles so brand decisions hidden by clamping stay visible.
func New(source string, p *palette.Palette, results []palette.Result) *Report {
	r := &Report{
		Source:  source,
		Records: make([]Record, 0, len(results)),
	}

	for _, res := range results {
		rec := Record{
			FG:        res.Rule.FG,
			BG:        res.Rule.BG,
			FGHex:     res.FG.RGB.Hex(),
			BGHex:     res.BG.RGB.Hex(),
			Ratio:     res.Ratio,
			Threshold: res.Threshold,
			Context:   res.Context,
			Pass:      res.Pass,
		}
		r.Records = append(r.Records, rec)

		if res.Pass {
			r.Passed++
		} else {
			r.Failed++
		}
	}

	if p != nil {
		for _, role := range p.Roles() {
			c, _ := p.Get(role)
			if !c.InGamut {
				r.GamutWarnings = append(r.GamutWarnings, GamutWarning{
					Role:    role,
					Clamped: c.RGB.Hex(),
				})
			}
		}
	}

	return r
}

// AllPass reports whether every record passed.
func (r *Report) AllPass() bool {
	return r.Failed == 0
}

// ExitCode maps the report onto the CLI exit-code convention.
func (r *Report) ExitCode() int {
	if r.AllPass() {
		return ExitOK
	}
	return ExitViolations
}

// JSON encodes the report for machine consumption.
func (r *Report) JSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
