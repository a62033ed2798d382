// Package report renders the tabular text outputs: raw-area and rank grids,
// peak position listings, and the catalog summary.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

// WriteAreaGrid prints a protein's raw areas as a 6xN tab-separated grid,
// one row per sample-layer block.
func WriteAreaGrid(w io.Writer, p *gradient.Protein, mode gradient.Mode) error {
	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		block := p.Raw.Block(b, mode)
		cells := make([]string, len(block))
		for i, a := range block {
			if a == gradient.AreaMissing {
				cells[i] = "-1"
			} else {
				cells[i] = strconv.FormatFloat(a, 'g', -1, 64)
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteRankGrid prints a protein's ranks as a 6xN tab-separated grid.
func WriteRankGrid(w io.Writer, prof *analysis.Profile) error {
	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		ranks := prof.BlockRanks(b)
		cells := make([]string, len(ranks))
		for i, r := range ranks {
			cells[i] = strconv.Itoa(r)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WritePeaks prints a protein's peak positions, one labeled line per block.
// Blocks without data print "no data".
func WritePeaks(w io.Writer, prof *analysis.Profile) error {
	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		set := prof.Peaks[b]
		if set.NoData() {
			if _, err := fmt.Fprintf(w, "%s\tno data\n", b.Label()); err != nil {
				return err
			}
			continue
		}
		cells := make([]string, len(set.Positions))
		for i, p := range set.Positions {
			cells[i] = strconv.Itoa(p)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", b.Label(), strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
