// Package cmd implements the command-line interface for oklint.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/oklint-cli/oklint/report"
	"github.com/oklint-cli/oklint/tokens"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("report", "r", false, "Generate the JSON Schema for check report objects")
}

// schemaCmd generates JSON schemas for the structured file formats.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for token files and check reports",
	Long: `Generate JSON schemas for the structured formats oklint reads and writes.

By default the schema describes the palette token file. Pass --report for
the schema of the JSON report emitted by the check command.`,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "file", "filerule", "report", "record":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("report")):
			schema = reflector.Reflect(&report.Report{})
		default:
			schema = reflector.Reflect(&tokens.File{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
