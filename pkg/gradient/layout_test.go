package gradient

import "testing"

func TestBlockAddressing(t *testing.T) {
	tests := []struct {
		sample int
		layer  Layer
		block  Block
		label  string
	}{
		{1, LayerUpper, 0, "s1-u"},
		{1, LayerLower, 1, "s1-l"},
		{2, LayerUpper, 2, "s2-u"},
		{2, LayerLower, 3, "s2-l"},
		{3, LayerUpper, 4, "s3-u"},
		{3, LayerLower, 5, "s3-l"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			b := BlockFor(tt.sample, tt.layer)
			if b != tt.block {
				t.Errorf("BlockFor(%d, %v) = %d, want %d", tt.sample, tt.layer, b, tt.block)
			}
			if b.Sample() != tt.sample {
				t.Errorf("Sample() = %d, want %d", b.Sample(), tt.sample)
			}
			if b.Layer() != tt.layer {
				t.Errorf("Layer() = %v, want %v", b.Layer(), tt.layer)
			}
			if b.Label() != tt.label {
				t.Errorf("Label() = %q, want %q", b.Label(), tt.label)
			}
		})
	}
}

func TestLinearIndex(t *testing.T) {
	tests := []struct {
		sample   int
		layer    Layer
		fraction int
		want     int
	}{
		{1, LayerUpper, 1, 0},
		{1, LayerUpper, 10, 9},
		{1, LayerLower, 1, 10},
		{2, LayerUpper, 1, 20},
		{2, LayerLower, 6, 35},
		{3, LayerUpper, 6, 45},
		{3, LayerLower, 10, 59},
	}

	for _, tt := range tests {
		got := LinearIndex(tt.sample, tt.layer, tt.fraction)
		if got != tt.want {
			t.Errorf("LinearIndex(%d, %v, %d) = %d, want %d", tt.sample, tt.layer, tt.fraction, got, tt.want)
		}
	}
}

func TestBlockStart(t *testing.T) {
	if got := Block(3).Start(Mode10); got != 30 {
		t.Errorf("Start(Mode10) = %d, want 30", got)
	}
	if got := Block(3).Start(Mode16); got != 48 {
		t.Errorf("Start(Mode16) = %d, want 48", got)
	}
}

func TestParseMode(t *testing.T) {
	if _, err := ParseMode(12); err == nil {
		t.Error("expected error for fraction count 12")
	}
	m, err := ParseMode(16)
	if err != nil {
		t.Fatalf("ParseMode(16): %v", err)
	}
	if m.SlotCount() != 96 {
		t.Errorf("SlotCount() = %d, want 96", m.SlotCount())
	}
}
