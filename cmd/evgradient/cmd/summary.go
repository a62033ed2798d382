package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yamamoto-tdc/EV-saliva/pkg/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print catalog summary statistics",
	Long: `Print the protein count and per-block statistics (measured slot count,
mean, standard deviation and quartiles of log intensities) over the whole
catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return report.WriteSummary(os.Stdout, cat)
	},
}
