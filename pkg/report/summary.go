package report

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

// BlockSummary aggregates the measured log intensities of one block over the
// whole catalog.
type BlockSummary struct {
	Block    gradient.Block
	Measured int
	Mean     float64
	StdDev   float64
	Q1       float64
	Median   float64
	Q3       float64
}

// Summarize collects per-block statistics of log intensities across every
// protein in the catalog.
func Summarize(cat *gradient.Catalog) []BlockSummary {
	out := make([]BlockSummary, gradient.NumBlocks)
	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		var values []float64
		for _, acc := range cat.Accessions() {
			p, _ := cat.Get(acc)
			for _, v := range p.Log.Block(b, cat.Mode()) {
				if v.OK {
					values = append(values, v.Value)
				}
			}
		}
		s := BlockSummary{Block: b, Measured: len(values)}
		if len(values) > 0 {
			sort.Float64s(values)
			s.Mean = stat.Mean(values, nil)
			if len(values) > 1 {
				s.StdDev = stat.StdDev(values, nil)
			}
			s.Q1 = stat.Quantile(0.25, stat.Empirical, values, nil)
			s.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
			s.Q3 = stat.Quantile(0.75, stat.Empirical, values, nil)
		}
		out[b] = s
	}
	return out
}

// WriteSummary prints the catalog summary: protein count and one line of
// per-block statistics.
func WriteSummary(w io.Writer, cat *gradient.Catalog) error {
	if _, err := fmt.Fprintf(w, "proteins\t%d\n", cat.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "block\tmeasured\tmean\tstddev\tq1\tmedian\tq3"); err != nil {
		return err
	}
	for _, s := range Summarize(cat) {
		_, err := fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			s.Block.Label(), s.Measured, s.Mean, s.StdDev, s.Q1, s.Median, s.Q3)
		if err != nil {
			return err
		}
	}
	return nil
}
