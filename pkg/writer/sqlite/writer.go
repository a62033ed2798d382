// Package sqlite exports the classification catalog to a SQLite database
// file.
package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

const headerDateFormat = "2006-01-02"

// Writer handles writing classification results to a SQLite file.
type Writer struct {
	db          *sql.DB
	outputPath  string
	proteinStmt *sql.Stmt
	classStmt   *sql.Stmt
}

// NewWriter creates the database and its schema.
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{db: db, outputPath: outputPath}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ProteinTable (
		Accession TEXT PRIMARY KEY,
		Name TEXT
	);

	CREATE TABLE IF NOT EXISTS ClassificationTable (
		Accession TEXT REFERENCES ProteinTable(Accession),
		Pair01 INTEGER,
		Pair12 INTEGER,
		Pair14 INTEGER,
		Pair23 INTEGER,
		Pair34 INTEGER,
		Pair45 INTEGER,
		Type1 INTEGER,
		Type2 INTEGER,
		Type3 INTEGER,
		Peaks TEXT
	);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		Version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		FractionMode INTEGER
	);
	`
	if _, err := w.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (w *Writer) prepareStatements() error {
	var err error

	w.proteinStmt, err = w.db.Prepare(`
		INSERT INTO ProteinTable (Accession, Name) VALUES (?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare protein statement: %w", err)
	}

	w.classStmt, err = w.db.Prepare(`
		INSERT INTO ClassificationTable (
			Accession, Pair01, Pair12, Pair14, Pair23, Pair34, Pair45,
			Type1, Type2, Type3, Peaks
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare classification statement: %w", err)
	}
	return nil
}

// WriteProtein writes one protein's classification. The name may be empty
// when no annotation table was loaded.
func (w *Writer) WriteProtein(prof *analysis.Profile, name string) error {
	if _, err := w.proteinStmt.Exec(prof.Accession, name); err != nil {
		return fmt.Errorf("failed to insert protein %s: %w", prof.Accession, err)
	}

	f := prof.Flags
	c := prof.Classes
	_, err := w.classStmt.Exec(
		prof.Accession,
		f.Pair01, f.Pair12, f.Pair14, f.Pair23, f.Pair34, f.Pair45,
		c.Type1, c.Type2, c.Type3,
		peaksText(prof),
	)
	if err != nil {
		return fmt.Errorf("failed to insert classification for %s: %w", prof.Accession, err)
	}
	return nil
}

// peaksText joins peak positions per block as "s1-u:3,7;s1-l:-;...". A dash
// marks a block without data.
func peaksText(prof *analysis.Profile) string {
	parts := make([]string, gradient.NumBlocks)
	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		set := prof.Peaks[b]
		if set.NoData() {
			parts[b] = b.Label() + ":-"
			continue
		}
		pos := make([]string, len(set.Positions))
		for i, p := range set.Positions {
			pos[i] = strconv.Itoa(p)
		}
		parts[b] = b.Label() + ":" + strings.Join(pos, ",")
	}
	return strings.Join(parts, ";")
}

// Finalize writes the header table and closes the database.
func (w *Writer) Finalize(mode gradient.Mode) error {
	_, err := w.db.Exec(`
		INSERT INTO HeaderTable (Version, CreationDate, FractionMode) VALUES (?, ?, ?)
	`, 1, time.Now().Format(headerDateFormat), int(mode))
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", err)
	}

	if w.proteinStmt != nil {
		w.proteinStmt.Close()
	}
	if w.classStmt != nil {
		w.classStmt.Close()
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
