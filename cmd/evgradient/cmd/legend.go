package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yamamoto-tdc/EV-saliva/pkg/render"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Render the color scale legend",
	Long: `Render the rank color scale to legend.svg in the output directory,
either as a continuous gradient (default) or as the 10 discrete buckets
with --stepwise. The legend needs no quantification input.`,
	RunE: runLegend,
}

func init() {
	legendCmd.Flags().BoolVar(&stepwise, "stepwise", false, "Draw 10 discrete buckets instead of a gradient")
}

func runLegend(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(outDir, "legend.svg")
	err := writeDrawing(path, func(f *os.File) error {
		if stepwise {
			return render.LegendStepwise(f)
		}
		return render.LegendContinuous(f)
	})
	if err != nil {
		return err
	}
	log.Printf("rendered %s", path)
	return nil
}
