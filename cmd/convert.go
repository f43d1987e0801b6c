// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"fmt"

	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/oklint-cli/oklint/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "oklch", "Target representation (oklch or hex)")

	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"oklch", "hex"}, cobra.ShellCompDirectiveDefault
	}))
}

// convertCmd converts a single color literal between sRGB hex and OKLCH.
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color literal between sRGB hex and OKLCH",
	Long: `Convert a color literal between sRGB hex and OKLCH.

Accepts #rgb, #rrggbb, #rrggbbaa and oklch(L C h [/ a]) literals. An OKLCH
value outside the sRGB gamut converts to the nearest displayable hex value
and is flagged as out of gamut.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		color, err := oklch.Parse(args[0])
		handleErr(err)

		var rendered string
		switch to := lo.Must(cmd.Flags().GetString("to")); to {
		case "oklch":
			rendered = color.LCH.String()
		case "hex":
			rendered = color.RGB.Hex()
		default:
			handleErr(fmt.Errorf("unknown target representation %q, expected oklch or hex", to))
		}

		fmt.Printf("%s %s\n", style.Swatch(color.RGB.Hex()), style.Bold(rendered))

		if !color.InGamut {
			fmt.Printf("%s out of sRGB gamut, shown value is clamped\n",
				style.Fg(style.WarningColor)(icon.Get(icon.Warn)),
			)
		}
	},
}
