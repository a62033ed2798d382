// Package render emits the heat-map and legend SVG artifacts. Layout is
// fixed: one row of colored cells per sample-layer block, rows grouped into
// sample pairs, cell color taken from the rank color scale.
package render

import (
	"fmt"
	"io"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/colormap"
	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

const (
	cellSize   = 18
	cellGap    = 2
	pairGap    = 14
	marginLeft = 56
	marginTop  = 34
	frameWidth = 2
	labelFont  = "font-family=\"Helvetica\" font-size=\"12\""
	titleFont  = "font-family=\"Helvetica\" font-size=\"14\""
)

func svgOpen(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	return err
}

func svgClose(w io.Writer) error {
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

func cell(w io.Writer, x, y int, fill string) error {
	_, err := fmt.Fprintf(w,
		"  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" stroke=\"#404040\" stroke-width=\"0.5\"/>\n",
		x, y, cellSize, cellSize, fill)
	return err
}

func rankRow(w io.Writer, x, y int, ranks []int) error {
	for i, r := range ranks {
		if err := cell(w, x+i*(cellSize+cellGap), y, colormap.ForRank(r)); err != nil {
			return err
		}
	}
	return nil
}

// Heatmap draws one protein's 6xN heat map: three sample pairs of two rows
// each, a pair framed when the protein's peaks coincide between its two
// layers, and a title line with accession and protein name (name may be
// empty).
func Heatmap(w io.Writer, prof *analysis.Profile, name string) error {
	n := prof.Mode.BlockSize()
	rowPitch := cellSize + cellGap
	width := marginLeft + n*rowPitch + 8
	height := marginTop + 6*rowPitch + 2*pairGap + 12

	if err := svgOpen(w, width, height); err != nil {
		return err
	}
	title := prof.Accession
	if name != "" {
		title += " " + name
	}
	if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>%s</text>\n",
		marginLeft, marginTop-14, titleFont, xmlEscape(title)); err != nil {
		return err
	}

	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		sample := b.Sample()
		y := marginTop + int(b)*rowPitch + (sample-1)*pairGap
		if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>%s</text>\n",
			6, y+cellSize-4, labelFont, b.Label()); err != nil {
			return err
		}
		if err := rankRow(w, marginLeft, y, prof.BlockRanks(b)); err != nil {
			return err
		}
	}

	// Frame a sample pair when its two layers peak together.
	for sample := 1; sample <= gradient.NumSamples; sample++ {
		if !prof.PairFlag(sample) {
			continue
		}
		y := marginTop + (sample-1)*(2*rowPitch+pairGap)
		frameW := n*rowPitch - cellGap + 2*frameWidth
		frameH := 2*rowPitch - cellGap + 2*frameWidth
		if _, err := fmt.Fprintf(w,
			"  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"#000000\" stroke-width=\"%d\"/>\n",
			marginLeft-frameWidth, y-frameWidth, frameW, frameH, frameWidth); err != nil {
			return err
		}
	}
	return svgClose(w)
}

// OverlayRow is one protein's contribution to an overlay drawing.
type OverlayRow struct {
	Accession string
	Ranks     []int
}

// Overlay draws several proteins' rank rows for one designated block, one
// row per protein, for comparative display.
func Overlay(w io.Writer, block gradient.Block, rows []OverlayRow) error {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows[0].Ranks)
	rowPitch := cellSize + cellGap
	labelWidth := 110
	width := labelWidth + n*rowPitch + 8
	height := marginTop + len(rows)*rowPitch + 12

	if err := svgOpen(w, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>%s</text>\n",
		labelWidth, marginTop-14, titleFont, block.Label()); err != nil {
		return err
	}
	for i, row := range rows {
		y := marginTop + i*rowPitch
		if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>%s</text>\n",
			6, y+cellSize-4, labelFont, xmlEscape(row.Accession)); err != nil {
			return err
		}
		if err := rankRow(w, labelWidth, y, row.Ranks); err != nil {
			return err
		}
	}
	return svgClose(w)
}

func xmlEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
