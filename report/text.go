package report

import (
	"fmt"
	"io"

	"github.com/oklint-cli/oklint/color"
	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/style"
	"github.com/oklint-cli/oklint/util"
	"github.com/spf13/viper"
)

// Text renders the report as a styled, line-oriented table. One line per
// record, in rule order, so CI output stays diffable.
func (r *Report) Text(w io.Writer) error {
	precision := viper.GetInt(key.ReportPrecision)
	if precision < 0 || precision > 6 {
		precision = 2
	}
	ratioFormat := fmt.Sprintf("%%.%df", precision)

	if r.Source != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", style.Title(r.Source)); err != nil {
			return err
		}
	}

	for _, rec := range r.Records {
		mark := style.Fg(style.PassColor)(icon.Get(icon.Success))
		comparator := "≥"
		if !rec.Pass {
			mark = style.Fg(style.FailColor)(icon.Get(icon.Fail))
			comparator = "<"
		}

		pair := fmt.Sprintf("%s on %s", style.Bold(rec.FG), style.Bold(rec.BG))
		ratio := fmt.Sprintf(ratioFormat+" %s "+ratioFormat, rec.Ratio, comparator, rec.Threshold)

		if _, err := fmt.Fprintf(w, "%s %s %s %s %s\n",
			mark,
			style.Swatch(rec.FGHex)+style.Swatch(rec.BGHex),
			pair,
			ratio,
			style.Faint(fmt.Sprintf("(%s)", rec.Context)),
		); err != nil {
			return err
		}
	}

	if viper.GetBool(key.ReportGamut) {
		for _, warning := range r.GamutWarnings {
			if _, err := fmt.Fprintf(w, "%s %s is outside the sRGB gamut, nearest displayable value is %s\n",
				style.Fg(style.WarningColor)(icon.Get(icon.Warn)),
				style.Bold(warning.Role),
				warning.Clamped,
			); err != nil {
				return err
			}
		}
	}

	summary := fmt.Sprintf("%s passed, %s failed",
		util.Quantify(r.Passed, "rule", "rules"),
		fmt.Sprint(r.Failed),
	)
	if r.AllPass() {
		summary = style.Fg(color.Green)(summary)
	} else {
		summary = style.Fg(color.Red)(summary)
	}

	_, err := fmt.Fprintf(w, "\n%s\n", summary)
	return err
}
