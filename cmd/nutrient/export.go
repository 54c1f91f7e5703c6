// ABOUTME: CLI commands for exporting and importing nutrition data.
// ABOUTME: Supports JSON (backup/restore) and Markdown (food diary) formats.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export nutrition data",
	Long: `Export profile, settings, meal ledger, and plans.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  markdown   A readable food diary grouped by day

EXAMPLES:

  nutrient export json                 # Export all data as JSON
  nutrient export json -o backup.json  # Save to file
  nutrient export markdown             # Print the food diary`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		snapshot, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			var buf bytes.Buffer
			if err := storage.WriteJSON(&buf, snapshot); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			data = buf.Bytes()
		case "markdown":
			data = []byte(storage.RenderMarkdown(snapshot))
		default:
			return fmt.Errorf("unknown format: %s (use json or markdown)", format)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import nutrition data from JSON",
	Long: `Import data from a JSON backup file.

Meals and plans that already exist (same ID) are skipped, so importing
the same backup twice is safe.

EXAMPLES:

  nutrient import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var snapshot storage.ExportData
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		if err := repo.ImportData(&snapshot); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
