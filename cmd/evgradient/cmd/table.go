package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/report"
)

var tableCmd = &cobra.Command{
	Use:   "table areas|ranks|peaks",
	Short: "Print tabular output for one protein",
	Long: `Print a protein's raw areas or ranks as a 6xN tab-separated grid
(rows are sample-layer blocks), or its peak positions one labeled line per
block.`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVarP(&selectAccession, "accession", "e", "", "Protein accession (required)")
	tableCmd.MarkFlagRequired("accession")
}

func runTable(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if kind != "areas" && kind != "ranks" && kind != "peaks" {
		return fmt.Errorf("unknown table kind %q (must be areas, ranks or peaks)", kind)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	p, ok := cat.Get(selectAccession)
	if !ok {
		return fmt.Errorf("%s: not found", selectAccession)
	}

	switch kind {
	case "areas":
		return report.WriteAreaGrid(os.Stdout, p, cat.Mode())
	case "ranks":
		return report.WriteRankGrid(os.Stdout, analysis.NewProfile(p, cat.Mode()))
	default:
		return report.WritePeaks(os.Stdout, analysis.NewProfile(p, cat.Mode()))
	}
}
