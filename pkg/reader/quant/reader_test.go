package quant

import (
	"strings"
	"testing"

	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

func TestReaderParsesRecords(t *testing.T) {
	input := "s1\tu\t03\tP12345\t500\n" +
		"s2\tl\t10\tQ67890\t1.5e6\n" +
		"\n" +
		"s3\tu\t01\tP12345\t0\n"

	ms, err := ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(ms) != 3 {
		t.Fatalf("got %d measurements, want 3", len(ms))
	}

	want := gradient.Measurement{Sample: 1, Layer: gradient.LayerUpper, Fraction: 3, Accession: "P12345", Area: 500}
	if ms[0] != want {
		t.Errorf("ms[0] = %+v, want %+v", ms[0], want)
	}
	if ms[1].Area != 1.5e6 {
		t.Errorf("scientific-notation area = %g, want 1.5e6", ms[1].Area)
	}
	if ms[2].Area != 0 {
		t.Errorf("zero area = %g, want 0", ms[2].Area)
	}
}

func TestReaderRejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"missing field", "s1\tu\t03\tP12345", "record"},
		{"unknown sample", "s4\tu\t03\tP12345\t500", "sample"},
		{"unknown layer", "s1\tx\t03\tP12345\t500", "layer"},
		{"one-digit fraction", "s1\tu\t3\tP12345\t500", "fraction"},
		{"fraction out of range", "s1\tu\t11\tP12345\t500", "fraction"},
		{"empty accession", "s1\tu\t03\t\t500", "accession"},
		{"bad area", "s1\tu\t03\tP12345\tabc", "area"},
		{"negative area", "s1\tu\t03\tP12345\t-5", "area"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.line + "\n"))
			if r.Next() {
				t.Fatal("Next() accepted a malformed line")
			}
			err := r.Err()
			if err == nil {
				t.Fatal("Err() = nil, want MalformedRecordError")
			}
			mre, ok := err.(*gradient.MalformedRecordError)
			if !ok {
				t.Fatalf("error type %T, want *MalformedRecordError", err)
			}
			if mre.Field != tt.field {
				t.Errorf("Field = %q, want %q", mre.Field, tt.field)
			}
			if mre.Line != 1 {
				t.Errorf("Line = %d, want 1", mre.Line)
			}
		})
	}
}

func TestReaderReportsLineNumbers(t *testing.T) {
	input := "s1\tu\t03\tP12345\t500\ns9\tu\t03\tP12345\t500\n"
	r := NewReader(strings.NewReader(input))
	if !r.Next() {
		t.Fatal("first line should parse")
	}
	if r.Next() {
		t.Fatal("second line should fail")
	}
	mre, ok := r.Err().(*gradient.MalformedRecordError)
	if !ok {
		t.Fatalf("error type %T, want *MalformedRecordError", r.Err())
	}
	if mre.Line != 2 {
		t.Errorf("Line = %d, want 2", mre.Line)
	}
}
