package gradient

import "math"

// AreaMissing marks a fraction with no measurement in a raw record. Raw areas
// are non-negative by contract, so the sentinel cannot collide with data.
const AreaMissing = -1

// QuantRecord holds raw peak areas in linear fraction order. Length is 60 in
// 10-fraction mode and 96 after remapping.
type QuantRecord []float64

// NewQuantRecord returns a 60-slot record with every fraction marked missing.
func NewQuantRecord() QuantRecord {
	rec := make(QuantRecord, Mode10.SlotCount())
	for i := range rec {
		rec[i] = AreaMissing
	}
	return rec
}

// Block returns the record window for one sample-layer block.
func (r QuantRecord) Block(b Block, mode Mode) QuantRecord {
	start := b.Start(mode)
	return r[start : start+mode.BlockSize()]
}

// Intensity is a log10-transformed abundance. Missing measurements carry
// OK=false rather than a sentinel value, so a legitimately small log value
// can never be mistaken for absent data.
type Intensity struct {
	Value float64
	OK    bool
}

// LogRecord holds log intensities co-indexed with a QuantRecord.
type LogRecord []Intensity

// Block returns the record window for one sample-layer block.
func (r LogRecord) Block(b Block, mode Mode) LogRecord {
	start := b.Start(mode)
	return r[start : start+mode.BlockSize()]
}

// LogTransform derives log intensities from raw areas: a missing area stays
// missing, an area of zero logs to zero, anything else to log10(area).
// Equal raw areas yield bit-identical log values, which the ranker's exact
// tie comparison relies on.
func LogTransform(raw QuantRecord) LogRecord {
	out := make(LogRecord, len(raw))
	for i, a := range raw {
		switch {
		case a == AreaMissing:
			out[i] = Intensity{}
		case a == 0:
			out[i] = Intensity{Value: 0, OK: true}
		default:
			out[i] = Intensity{Value: math.Log10(a), OK: true}
		}
	}
	return out
}

// Protein owns the quantification state for one accession over a single run.
type Protein struct {
	Accession string
	Raw       QuantRecord
	Log       LogRecord
}
