// Package quant provides a streaming reader for tab-delimited quantification
// records.
package quant

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

// A quantification line carries five tab-separated fields:
// sample tag (s1..s3), layer tag (u or l), a two-digit fraction number,
// the protein accession, and the peak area (decimal or scientific notation).
const numFields = 5

// Reader provides streaming access to quantification files.
type Reader struct {
	scanner *bufio.Scanner
	lineNum int
	current gradient.Measurement
	err     error
}

// NewReader creates a new quantification reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next advances to the next measurement. Returns false at end of input or on
// the first malformed line; bad input data cannot be partially trusted.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimRight(r.scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := r.parseLine(line)
		if err != nil {
			r.err = err
			return false
		}
		r.current = m
		return true
	}
	r.err = r.scanner.Err()
	return false
}

// Measurement returns the current measurement.
func (r *Reader) Measurement() gradient.Measurement {
	return r.current
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) parseLine(line string) (gradient.Measurement, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return gradient.Measurement{}, &gradient.MalformedRecordError{
			Line:    r.lineNum,
			Field:   "record",
			Message: fmt.Sprintf("expected %d tab-separated fields, got %d", numFields, len(fields)),
		}
	}

	sample, err := parseSampleTag(fields[0])
	if err != nil {
		return gradient.Measurement{}, &gradient.MalformedRecordError{Line: r.lineNum, Field: "sample", Message: err.Error()}
	}

	layer, err := gradient.ParseLayer(fields[1])
	if err != nil {
		return gradient.Measurement{}, &gradient.MalformedRecordError{Line: r.lineNum, Field: "layer", Message: err.Error()}
	}

	fraction, err := parseFraction(fields[2])
	if err != nil {
		return gradient.Measurement{}, &gradient.MalformedRecordError{Line: r.lineNum, Field: "fraction", Message: err.Error()}
	}

	accession := strings.TrimSpace(fields[3])
	if accession == "" {
		return gradient.Measurement{}, &gradient.MalformedRecordError{Line: r.lineNum, Field: "accession", Message: "empty accession"}
	}

	area, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil || area < 0 {
		return gradient.Measurement{}, &gradient.MalformedRecordError{
			Line:    r.lineNum,
			Field:   "area",
			Message: fmt.Sprintf("invalid area %q", fields[4]),
		}
	}

	return gradient.Measurement{
		Sample:    sample,
		Layer:     layer,
		Fraction:  fraction,
		Accession: accession,
		Area:      area,
	}, nil
}

func parseSampleTag(tag string) (int, error) {
	switch tag {
	case "s1":
		return 1, nil
	case "s2":
		return 2, nil
	case "s3":
		return 3, nil
	}
	return 0, fmt.Errorf("unknown sample tag %q", tag)
}

func parseFraction(field string) (int, error) {
	if len(field) != 2 {
		return 0, fmt.Errorf("fraction number %q is not two digits", field)
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("fraction number %q is not numeric", field)
	}
	if n < 1 || n > gradient.FractionsMeasured {
		return 0, fmt.Errorf("fraction number %d out of range 1..%d", n, gradient.FractionsMeasured)
	}
	return n, nil
}

// ReadAll drains the reader into a measurement slice.
func ReadAll(r io.Reader) ([]gradient.Measurement, error) {
	qr := NewReader(r)
	var ms []gradient.Measurement
	for qr.Next() {
		ms = append(ms, qr.Measurement())
	}
	if err := qr.Err(); err != nil {
		return nil, errors.Wrap(err, "reading quantification records")
	}
	return ms, nil
}
