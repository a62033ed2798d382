package gradient

import (
	"math"
	"testing"
)

func TestLogTransform(t *testing.T) {
	raw := NewQuantRecord()
	raw[0] = 0       // measured zero
	raw[1] = 100     // logs to 2
	raw[2] = 0.01    // logs to -2, still a measurement
	raw[3] = 1.5e6   // scientific-notation scale input
	// raw[4] stays missing

	log := LogTransform(raw)

	if !log[0].OK || log[0].Value != 0 {
		t.Errorf("raw 0 must log to a measured 0, got %+v", log[0])
	}
	if !log[1].OK || log[1].Value != 2 {
		t.Errorf("raw 100 must log to 2, got %+v", log[1])
	}
	if !log[2].OK || math.Abs(log[2].Value+2) > 1e-12 {
		t.Errorf("raw 0.01 must log to -2 and stay measured, got %+v", log[2])
	}
	if !log[3].OK || log[3].Value != math.Log10(1.5e6) {
		t.Errorf("raw 1.5e6 logged wrong: %+v", log[3])
	}
	if log[4].OK {
		t.Errorf("missing raw value must stay missing, got %+v", log[4])
	}
	if len(log) != len(raw) {
		t.Errorf("log record length %d, want %d", len(log), len(raw))
	}
}

func TestLogTransformEqualAreasEqualLogs(t *testing.T) {
	raw := QuantRecord{123.456, 123.456}
	log := LogTransform(raw)
	if log[0].Value != log[1].Value {
		t.Error("equal raw areas must yield bit-identical log values")
	}
}

func TestNewQuantRecordAllMissing(t *testing.T) {
	rec := NewQuantRecord()
	if len(rec) != 60 {
		t.Fatalf("record length %d, want 60", len(rec))
	}
	for i, a := range rec {
		if a != AreaMissing {
			t.Fatalf("slot %d not initialized to missing: %g", i, a)
		}
	}
}
