// Package annot loads the accession-to-description table and extracts
// protein names from UniProt-style descriptions.
package annot

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// NotFoundError reports an accession absent from the table.
type NotFoundError struct {
	Accession string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Accession)
}

// namePattern extracts the protein name from a description of the form
// "<name> OS=Homo ...". Descriptions for other organisms do not occur in
// this data set and are rejected.
var namePattern = regexp.MustCompile(`^(.+?) OS=Homo`)

// Table maps accessions to their free-text descriptions.
type Table struct {
	desc map[string]string
}

// Load reads a tab-delimited accession table (accession, description).
func Load(r io.Reader) (*Table, error) {
	t := &Table{desc: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 tab-separated fields", lineNum)
		}
		t.desc[strings.TrimSpace(fields[0])] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading accession table")
	}
	return t, nil
}

// Description returns the raw description for an accession.
func (t *Table) Description(accession string) (string, error) {
	d, ok := t.desc[accession]
	if !ok {
		return "", &NotFoundError{Accession: accession}
	}
	return d, nil
}

// Name returns the protein name extracted from the accession's description.
func (t *Table) Name(accession string) (string, error) {
	d, err := t.Description(accession)
	if err != nil {
		return "", err
	}
	m := namePattern.FindStringSubmatch(d)
	if m == nil {
		return "", fmt.Errorf("%s: description %q does not match \"<name> OS=Homo ...\"", accession, d)
	}
	return m[1], nil
}
