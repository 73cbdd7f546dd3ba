// ABOUTME: CLI commands for exporting and importing the full state.
// ABOUTME: Export writes JSON or YAML; import replaces per present key.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [json|yaml]",
	Short: "Export all data",
	Long: `Export the complete application state.

The export is a flat document holding every collection: foods, meals,
diary, plan, shopping lists, settings, categories, badges, and water.

Examples:
  plate export                     # JSON to stdout
  plate export yaml                # YAML to stdout
  plate export json -o backup.json # JSON to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "json"
		if len(args) == 1 {
			format = args[0]
		}

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = st.ExportJSON()
		case "yaml", "yml":
			data, err = st.ExportYAML()
		default:
			return fmt.Errorf("unknown export format %q (want json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Import state from a previously exported JSON file.

Import is additive per key: a collection present in the file replaces
the stored one, a collection absent from the file is left untouched.
A file holding only foods updates foods and nothing else.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		if err := st.ImportJSON(data); err != nil {
			return err
		}
		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
