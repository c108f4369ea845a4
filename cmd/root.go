// Package cmd implements the resistor-scan command line interface.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resistor-scan",
		Short: "Detect resistor color bands and compute the resistance value",
		Long: `resistor-scan reads a photo of a resistor, finds the painted color
bands and decodes them into a resistance value in ohms.

It can analyze a single image from the command line or serve the same
pipeline over HTTP for uploads.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
