// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/filesystem"
	"github.com/oklint-cli/oklint/icon"
	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/oklint-cli/oklint/tokens"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "F", false, "Overwrite the target file if it already exists")
	initCmd.Flags().Bool("set-default", false, "Point the tokens.path config key at the created file")
}

// initCmd interactively scaffolds a new palette token file.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Interactively scaffold a palette token file",
	Long: `Interactively scaffold a palette token file.

Prompts for role names and their colors, then writes a starter rule pairing
the first two roles. The output format follows the file extension, json or
toml.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "oklint.json"
		if len(args) == 1 {
			path = args[0]
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".toml" {
			handleErr(fmt.Errorf("unsupported token file extension %q, expected .json or .toml", ext))
		}

		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists, pass --force to overwrite", path))
		}

		file := tokens.File{Palette: make(map[string]string)}
		for {
			var role string
			handleErr(survey.AskOne(&survey.Input{
				Message: "Role name (empty to finish):",
				Help:    "A semantic name such as fg, bg or accent",
			}, &role))

			role = strings.TrimSpace(role)
			if role == "" {
				break
			}
			if _, taken := file.Palette[role]; taken {
				fmt.Printf("%s role %q is already defined\n", icon.Get(icon.Warn), role)
				continue
			}

			var literal string
			handleErr(survey.AskOne(&survey.Input{
				Message: fmt.Sprintf("Color for %q:", role),
				Help:    "A #rrggbb or oklch(L C h) literal",
			}, &literal, survey.WithValidator(func(ans interface{}) error {
				_, err := oklch.Parse(ans.(string))
				return err
			})))

			file.Palette[role] = strings.TrimSpace(literal)
		}

		if len(file.Palette) < 2 {
			handleErr(fmt.Errorf("a token file needs at least two roles, got %d", len(file.Palette)))
		}

		roles := lo.Keys(file.Palette)
		var fg, bg string
		handleErr(survey.AskOne(&survey.Select{
			Message: "Foreground role of the starter rule:",
			Options: roles,
		}, &fg))
		handleErr(survey.AskOne(&survey.Select{
			Message: "Background role of the starter rule:",
			Options: lo.Without(roles, fg),
		}, &bg))

		var context string
		handleErr(survey.AskOne(&survey.Select{
			Message: "Usage context of the starter rule:",
			Options: []string{string(contrast.Body), string(contrast.Large)},
			Default: string(contrast.Body),
		}, &context))

		file.Rules = []tokens.FileRule{{FG: fg, BG: bg, Context: context}}

		var contents []byte
		switch ext {
		case ".json":
			contents, err = json.MarshalIndent(file, "", "  ")
		case ".toml":
			contents, err = toml.Marshal(file)
		}
		handleErr(err)

		handleErr(filesystem.API().WriteFile(path, contents, 0655))

		if lo.Must(cmd.Flags().GetBool("set-default")) {
			viper.Set(key.TokensPath, path)
			handleErr(writeConfig())
		}

		fmt.Printf("%s wrote %s\n", icon.Get(icon.Success), path)
	},
}

// writeConfig persists viper state, creating the config file when missing.
func writeConfig() error {
	switch err := viper.WriteConfig(); err.(type) {
	case nil:
		return nil
	case viper.ConfigFileNotFoundError:
		return viper.SafeWriteConfig()
	default:
		return err
	}
}
