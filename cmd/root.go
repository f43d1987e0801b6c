// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/oklint-cli/oklint/color"
	"github.com/oklint-cli/oklint/constant"
	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/log"
	"github.com/oklint-cli/oklint/report"
	"github.com/oklint-cli/oklint/style"
	"github.com/oklint-cli/oklint/tui"
	"github.com/oklint-cli/oklint/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("file", "f", "", "Palette token file to browse (json or toml)")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Float64("body-threshold", 4.5, "Minimum ratio enforced for body text rules")
	lo.Must0(viper.BindPFlag(key.ThresholdsBody, rootCmd.PersistentFlags().Lookup("body-threshold")))

	rootCmd.PersistentFlags().Float64("large-threshold", 3.0, "Minimum ratio enforced for large text / UI rules")
	lo.Must0(viper.BindPFlag(key.ThresholdsLarge, rootCmd.PersistentFlags().Lookup("large-threshold")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the oklint application.
var rootCmd = &cobra.Command{
	Use:   constant.Oklint,
	Short: "A perceptual color-contrast and palette auditor built on OKLCH",
	Long: style.Title(constant.Oklint) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - audit palette token files for WCAG contrast violations in the OKLCH color space"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		path := resolveTokensPath(lo.Must(cmd.Flags().GetString("file")))
		if path == "" {
			handleErr(errors.New("no token file given, pass --file or set the tokens.path config key"))
		}

		handleErr(tui.Run(&tui.Options{Path: path}))
	},
}

// resolveTokensPath prefers the explicit flag over the configured default path.
func resolveTokensPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key.TokensPath)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(report.ExitConfig)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(report.ExitConfig)
	}
}
