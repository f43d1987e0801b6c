// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/filesystem"
	"github.com/oklint-cli/oklint/history"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/log"
	"github.com/oklint-cli/oklint/palette"
	"github.com/oklint-cli/oklint/report"
	"github.com/oklint-cli/oklint/tokens"
	"github.com/oklint-cli/oklint/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("file", "f", "", "Palette token file to audit (json or toml)")
	checkCmd.Flags().BoolP("json", "j", false, "Format the report as a JSON object")
	checkCmd.Flags().StringP("output", "o", "", "Specify a file path to write the report to")
	checkCmd.Flags().BoolP("quiet", "q", false, "Suppress report output, signal the verdict through the exit code only")

	lo.Must0(checkCmd.RegisterFlagCompletionFunc("file", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	}))
}

// checkCmd audits a token file and reports contrast violations.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit a palette token file against its declared contrast rules",
	Long: `Audit a palette token file against its declared contrast rules.

Every rule pairs a foreground role with a background role and a usage
context (body or large) selecting the enforced threshold. The report lists
one record per rule in file order.

Exit codes:
  0 - every rule passed
  1 - at least one rule failed
  2 - configuration error (unreadable file, missing role, bad threshold)`,
	Run: func(cmd *cobra.Command, args []string) {
		path := resolveTokensPath(lo.Must(cmd.Flags().GetString("file")))
		if path == "" {
			handleErr(errors.New("no token file given, pass --file or set the tokens.path config key"))
		}

		doc, err := tokens.Load(path)
		handleErr(err)

		policy := contrast.PolicyFromConfig()
		results, err := palette.Validate(doc.Palette, doc.Rules, policy)
		handleErr(err)

		rep := report.New(path, doc.Palette, results)

		if viper.GetBool(key.HistorySaveOnCheck) {
			if err := history.Save(rep); err != nil {
				log.Warnf("save history: %v", err)
			}
		}

		if !lo.Must(cmd.Flags().GetBool("quiet")) {
			var writer io.Writer = os.Stdout
			if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
				f, err := filesystem.API().Create(output)
				handleErr(err)
				defer util.Ignore(f.Close)
				writer = f
			}

			asJson := viper.GetString(key.ReportFormat) == "json"
			if cmd.Flags().Changed("json") {
				asJson = lo.Must(cmd.Flags().GetBool("json"))
			}

			if asJson {
				handleErr(rep.JSON(writer))
			} else {
				handleErr(rep.Text(writer))
			}
		}

		os.Exit(rep.ExitCode())
	},
}
