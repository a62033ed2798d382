package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/writer/sqlite"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the catalog and print type membership",
	Long: `Run the peak comparison over every protein and print the type1, type2
and type3 accession lists. With --db the full classification (pair flags,
types, peak positions) is also exported to a SQLite database file.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&dbFile, "db", "", "Export classification to this SQLite file")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	table, err := loadAnnotations()
	if err != nil {
		return err
	}

	var w *sqlite.Writer
	if dbFile != "" {
		if w, err = sqlite.NewWriter(dbFile); err != nil {
			return err
		}
	}

	var type1, type2, type3 []string
	for _, acc := range cat.Accessions() {
		p, _ := cat.Get(acc)
		prof := analysis.NewProfile(p, cat.Mode())
		if prof.Classes.Type1 {
			type1 = append(type1, acc)
		}
		if prof.Classes.Type2 {
			type2 = append(type2, acc)
		}
		if prof.Classes.Type3 {
			type3 = append(type3, acc)
		}
		if w != nil {
			name := ""
			if table != nil {
				if name, err = table.Name(acc); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
					name = ""
				}
			}
			if err := w.WriteProtein(prof, name); err != nil {
				return err
			}
		}
	}

	printClass("type1", type1)
	printClass("type2", type2)
	printClass("type3", type3)

	if w != nil {
		if err := w.Finalize(cat.Mode()); err != nil {
			return err
		}
		fmt.Printf("Exported %d proteins to %s\n", cat.Len(), dbFile)
	}
	return nil
}

func printClass(label string, accessions []string) {
	fmt.Printf("%s\t%d\n", label, len(accessions))
	for _, acc := range accessions {
		fmt.Printf("\t%s\n", acc)
	}
}
