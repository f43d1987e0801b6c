// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/oklint-cli/oklint/report"
	"github.com/oklint-cli/oklint/style"
	"github.com/oklint-cli/oklint/tokens"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(ratioCmd)

	ratioCmd.Flags().StringP("context", "c", string(contrast.Body), "Usage context selecting the threshold (body or large)")
	ratioCmd.Flags().StringP("file", "f", "", "Token file whose role names may stand in for color literals")

	lo.Must0(ratioCmd.RegisterFlagCompletionFunc("context", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(contrast.Body), string(contrast.Large)}, cobra.ShellCompDirectiveDefault
	}))
}

// ratioCmd computes the contrast ratio between two colors. Each argument is
// either a color literal or, when a token file is available, a role name.
var ratioCmd = &cobra.Command{
	Use:   "ratio <foreground> <background>",
	Short: "Compute the WCAG contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= 2 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		path := resolveTokensPath(lo.Must(cmd.Flags().GetString("file")))
		if path == "" {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		doc, err := tokens.Load(path)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		return fuzzy.FindFold(toComplete, doc.Palette.Roles()), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, err := contrast.ParseContext(lo.Must(cmd.Flags().GetString("context")))
		handleErr(err)

		fg, err := resolveColor(cmd, args[0])
		handleErr(err)

		bg, err := resolveColor(cmd, args[1])
		handleErr(err)

		eval, err := contrast.Evaluate(fg.RGB, bg.RGB, ctx, contrast.PolicyFromConfig())
		handleErr(err)

		mark, rel := icon.Get(icon.Fail), "<"
		markStyle := style.Fg(style.FailColor)
		if eval.Pass {
			mark, rel = icon.Get(icon.Success), "≥"
			markStyle = style.Fg(style.PassColor)
		}

		precision := viper.GetInt(key.ReportPrecision)
		if precision < 0 || precision > 6 {
			precision = 2
		}
		fmt.Printf(
			"%s %s %s  %.*f %s %.*f (%s)\n",
			markStyle(mark),
			style.Swatch(fg.RGB.Hex()),
			style.Swatch(bg.RGB.Hex()),
			precision, eval.Ratio,
			rel,
			precision, eval.Threshold,
			style.Faint(string(ctx)),
		)

		if !eval.Pass {
			os.Exit(report.ExitViolations)
		}
	},
}

// resolveColor parses arg as a color literal, falling back to a role lookup
// in the token file when a literal does not parse and a file is reachable.
func resolveColor(cmd *cobra.Command, arg string) (oklch.Color, error) {
	color, parseErr := oklch.Parse(arg)
	if parseErr == nil {
		return color, nil
	}

	if path := resolveTokensPath(lo.Must(cmd.Flags().GetString("file"))); path != "" {
		doc, err := tokens.Load(path)
		if err == nil {
			if color, ok := doc.Palette.Get(arg); ok {
				return color, nil
			}
		}
	}

	return oklch.Color{}, parseErr
}
