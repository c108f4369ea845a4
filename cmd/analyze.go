package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resistor-scan/internal/band"
	"resistor-scan/internal/imgio"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		maxDim   int
		adaptive bool
		debug    bool
		debugDir string
	)

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Detect color bands in a resistor photo",
		Args:  cobra.ExactArgs(1),
		Example: `  # Analyze a photo
  resistor-scan analyze testresistor.jpg

  # Keep full resolution and write intermediate masks for inspection
  resistor-scan analyze photo.png --max-dim 0 --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := imgio.CheckExtension(path); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			mat, err := imgio.Decode(data)
			if err != nil {
				return err
			}
			defer mat.Close()

			params := band.DefaultParams()
			params.MaxDimension = maxDim
			params.UseAdaptiveThreshold = adaptive
			params.Debug = debug

			var sink band.DebugSink
			if debug {
				dir := debugDir
				if dir == "" {
					dir = filepath.Dir(path)
				}
				sink = band.FileSink{Dir: dir}
			}

			result, err := band.DetectWithSink(mat, params, sink)
			if err != nil {
				return err
			}

			for _, b := range result.Bands {
				fmt.Printf("%-7s digit %d at (%d,%d)\n", b.Color, b.Digit, b.X, b.Y)
			}
			switch {
			case len(result.Bands) == 0:
				fmt.Println("No bands detected")
			case result.Ohms == nil:
				fmt.Printf("Detected %d bands; cannot determine the value\n", len(result.Bands))
			default:
				fmt.Printf("The resistance is %d ohms\n", *result.Ohms)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDim, "max-dim", band.DefaultParams().MaxDimension, "Resize longest image side to this (0 to disable)")
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "Use adaptive threshold (slower, sometimes more robust)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Write intermediate masks and a band overlay as PNG files")
	cmd.Flags().StringVar(&debugDir, "debug-dir", "", "Directory for debug output (default: alongside the image)")

	return cmd
}
