// Package cmd provides CLI command implementations
package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
	"github.com/yamamoto-tdc/EV-saliva/pkg/reader/annot"
	"github.com/yamamoto-tdc/EV-saliva/pkg/reader/quant"
)

var (
	// Shared flags
	quantFile string
	annotFile string
	fractions int
	outDir    string

	// Flags for heatmap command
	selectAll       bool
	selectAccession string
	selectClass     string
	selectOverlay   string

	// Flags for classify command
	dbFile string

	// Flags for legend command
	stepwise bool
)

var rootCmd = &cobra.Command{
	Use:   "evgradient",
	Short: "evgradient - gradient fraction heat-map and classification tool",
	Long: `evgradient classifies proteins by where their abundance peaks across a
fractionated gradient (3 samples x upper/lower layer x 10 or 16 fractions)
and renders per-protein heat maps of rank-encoded abundance.

Input is a tab-delimited quantification file (sample tag, layer tag,
two-digit fraction number, accession, peak area) plus an optional
accession-to-description table.`,
	Version: "1.2.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&quantFile, "quant", "q", "", "Quantification file (required)")
	rootCmd.PersistentFlags().StringVarP(&annotFile, "annotations", "a", "", "Accession-to-description table")
	rootCmd.PersistentFlags().IntVarP(&fractions, "fractions", "n", 10, "Fractions per layer: 10 or 16")
	rootCmd.PersistentFlags().StringVarP(&outDir, "outdir", "o", "heatmaps", "Output directory for drawings")

	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(summaryCmd)
}

// loadCatalog reads the quantification file into the store in the mode
// selected by --fractions. Any malformed record is fatal.
func loadCatalog() (*gradient.Catalog, error) {
	mode, err := gradient.ParseMode(fractions)
	if err != nil {
		return nil, err
	}
	if quantFile == "" {
		return nil, errors.New("no quantification file given (use --quant)")
	}
	f, err := os.Open(quantFile)
	if err != nil {
		return nil, errors.Wrap(err, "open quantification file")
	}
	defer f.Close()

	measurements, err := quant.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return gradient.Load(measurements, mode)
}

// loadAnnotations reads the accession table when one was given. A nil table
// means names are simply unavailable.
func loadAnnotations() (*annot.Table, error) {
	if annotFile == "" {
		return nil, nil
	}
	f, err := os.Open(annotFile)
	if err != nil {
		return nil, errors.Wrap(err, "open annotation table")
	}
	defer f.Close()
	return annot.Load(f)
}
