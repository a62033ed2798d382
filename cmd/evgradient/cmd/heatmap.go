package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
	"github.com/yamamoto-tdc/EV-saliva/pkg/render"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Render per-protein heat maps",
	Long: `Render one SVG heat map per selected protein into the output directory.

Selection is one of:
  --all                   every protein in the catalog
  --accession ACC         exactly one protein (lookup failure is fatal)
  --class type1|type2|type3   a classified set
  --overlay B:ACC1,ACC2   named proteins layered against block B (0-5)

Without a selection flag the run produces no output.`,
	RunE: runHeatmap,
}

func init() {
	heatmapCmd.Flags().BoolVar(&selectAll, "all", false, "Render every protein")
	heatmapCmd.Flags().StringVarP(&selectAccession, "accession", "e", "", "Render a single accession")
	heatmapCmd.Flags().StringVarP(&selectClass, "class", "c", "", "Render a classified set: type1, type2 or type3")
	heatmapCmd.Flags().StringVar(&selectOverlay, "overlay", "", "Overlay selection: block index 0-5, colon, comma-separated accessions")
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	if !selectAll && selectAccession == "" && selectClass == "" && selectOverlay == "" {
		// No selection is a silent no-op.
		return nil
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	table, err := loadAnnotations()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := removeStaleDrawings(outDir); err != nil {
		return err
	}

	if selectOverlay != "" {
		return renderOverlay(cat)
	}

	if selectAccession != "" {
		p, ok := cat.Get(selectAccession)
		if !ok {
			return fmt.Errorf("%s: not found", selectAccession)
		}
		name := ""
		if table != nil {
			// Fatal on the single-accession path.
			if name, err = table.Name(selectAccession); err != nil {
				return err
			}
		}
		return renderOne(p, cat.Mode(), name)
	}

	var class string
	if selectClass != "" {
		class = strings.ToLower(selectClass)
		if class != "type1" && class != "type2" && class != "type3" {
			return fmt.Errorf("unknown class %q (must be type1, type2 or type3)", selectClass)
		}
	}

	rendered := 0
	for _, acc := range cat.Accessions() {
		p, _ := cat.Get(acc)
		prof := analysis.NewProfile(p, cat.Mode())
		if class != "" && !inClass(prof.Classes, class) {
			continue
		}
		name := ""
		if table != nil {
			name, err = table.Name(acc)
			if err != nil {
				// One bad lookup must not spoil the batch.
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				name = ""
			}
		}
		if err := writeDrawing(filepath.Join(outDir, acc+".svg"), func(f *os.File) error {
			return render.Heatmap(f, prof, name)
		}); err != nil {
			return err
		}
		rendered++
	}
	log.Printf("rendered %d heat maps to %s", rendered, outDir)
	return nil
}

func inClass(c analysis.Classes, class string) bool {
	switch class {
	case "type1":
		return c.Type1
	case "type2":
		return c.Type2
	default:
		return c.Type3
	}
}

func renderOne(p *gradient.Protein, mode gradient.Mode, name string) error {
	prof := analysis.NewProfile(p, mode)
	path := filepath.Join(outDir, p.Accession+".svg")
	if err := writeDrawing(path, func(f *os.File) error {
		return render.Heatmap(f, prof, name)
	}); err != nil {
		return err
	}
	log.Printf("rendered %s", path)
	return nil
}

func renderOverlay(cat *gradient.Catalog) error {
	block, accessions, err := parseOverlaySelection(selectOverlay)
	if err != nil {
		return err
	}
	rows := make([]render.OverlayRow, 0, len(accessions))
	for _, acc := range accessions {
		p, ok := cat.Get(acc)
		if !ok {
			return fmt.Errorf("%s: not found", acc)
		}
		prof := analysis.NewProfile(p, cat.Mode())
		rows = append(rows, render.OverlayRow{Accession: acc, Ranks: prof.BlockRanks(block)})
	}
	path := filepath.Join(outDir, "overlay.svg")
	if err := writeDrawing(path, func(f *os.File) error {
		return render.Overlay(f, block, rows)
	}); err != nil {
		return err
	}
	log.Printf("rendered %s", path)
	return nil
}

// parseOverlaySelection splits "B:acc1,acc2,..." into a block index and
// accession list.
func parseOverlaySelection(sel string) (gradient.Block, []string, error) {
	parts := strings.SplitN(sel, ":", 2)
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("invalid overlay selection %q (want B:ACC1,ACC2,...)", sel)
	}
	b, err := strconv.Atoi(parts[0])
	if err != nil || b < 0 || b >= gradient.NumBlocks {
		return 0, nil, fmt.Errorf("invalid block index %q (must be 0-5)", parts[0])
	}
	var accessions []string
	for _, acc := range strings.Split(parts[1], ",") {
		acc = strings.TrimSpace(acc)
		if acc != "" {
			accessions = append(accessions, acc)
		}
	}
	if len(accessions) == 0 {
		return 0, nil, fmt.Errorf("overlay selection %q names no accessions", sel)
	}
	return gradient.Block(b), accessions, nil
}

// removeStaleDrawings clears SVG output from a previous run so a narrower
// selection never leaves stale drawings behind.
func removeStaleDrawings(dir string) error {
	stale, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

func writeDrawing(path string, draw func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
