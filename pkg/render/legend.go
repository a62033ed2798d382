package render

import (
	"fmt"
	"io"

	"github.com/yamamoto-tdc/EV-saliva/pkg/colormap"
)

// LegendStepwise draws the 10-bucket rank scale as labeled swatches from
// rank 9 down to 0, plus the missing-data swatch.
func LegendStepwise(w io.Writer) error {
	rowPitch := cellSize + cellGap
	width := 120
	height := marginTop + 11*rowPitch

	if err := svgOpen(w, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <text x=\"6\" y=\"%d\" %s>rank</text>\n", marginTop-14, titleFont); err != nil {
		return err
	}
	for i := 0; i < 10; i++ {
		rank := 9 - i
		y := marginTop + i*rowPitch
		if err := cell(w, 6, y, colormap.ForRank(rank)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>%d</text>\n",
			6+cellSize+8, y+cellSize-4, labelFont, rank); err != nil {
			return err
		}
	}
	y := marginTop + 10*rowPitch
	if err := cell(w, 6, y, colormap.Missing); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>no data</text>\n",
		6+cellSize+8, y+cellSize-4, labelFont); err != nil {
		return err
	}
	return svgClose(w)
}

// LegendContinuous draws the scale as a vertical gradient through the bucket
// colors, top rank at the top.
func LegendContinuous(w io.Writer) error {
	width := 120
	barHeight := 10 * (cellSize + cellGap)

	if err := svgOpen(w, width, marginTop+barHeight+12); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <defs>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <linearGradient id=\"rankscale\" x1=\"0\" y1=\"0\" x2=\"0\" y2=\"1\">"); err != nil {
		return err
	}
	scale := colormap.Scale()
	for i := 0; i < len(scale); i++ {
		// rank 9 first
		offset := float64(i) / float64(len(scale)-1) * 100
		if _, err := fmt.Fprintf(w, "      <stop offset=\"%.1f%%\" stop-color=\"%s\"/>\n",
			offset, scale[len(scale)-1-i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </linearGradient>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </defs>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"  <rect x=\"6\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"url(#rankscale)\" stroke=\"#404040\" stroke-width=\"0.5\"/>\n",
		marginTop, cellSize, barHeight); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>9</text>\n",
		6+cellSize+8, marginTop+12, labelFont); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" %s>0</text>\n",
		6+cellSize+8, marginTop+barHeight, labelFont); err != nil {
		return err
	}
	return svgClose(w)
}
