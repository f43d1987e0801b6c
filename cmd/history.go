// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/oklint-cli/oklint/color"
	"github.com/oklint-cli/oklint/history"
	"github.com/oklint-cli/oklint/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	historyCmd.Flags().StringP("remove", "r", "", "Remove the saved summary for the given token file")

	lo.Must0(historyCmd.RegisterFlagCompletionFunc("remove", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		saved, err := history.Get()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		return lo.Keys(saved), cobra.ShellCompDirectiveNoFileComp
	}))
}

// historyCmd lists summaries of past audit runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List summaries of past audit runs",
	Run: func(cmd *cobra.Command, args []string) {
		if source := lo.Must(cmd.Flags().GetString("remove")); source != "" {
			handleErr(history.Remove(source))
			return
		}

		saved, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(saved))
			return
		}

		runs := lo.Values(saved)
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].CheckedAt.After(runs[j].CheckedAt)
		})

		for _, run := range runs {
			verdict := style.Fg(color.Green)("passed")
			if run.Failed > 0 {
				verdict = style.Fg(color.Red)(fmt.Sprintf("%d failed", run.Failed))
			}

			fmt.Printf("%s %s %s\n",
				style.Faint(run.CheckedAt.Format("2006-01-02 15:04")),
				style.Bold(run.Source),
				verdict,
			)
		}
	},
}
