// Package gradient provides the in-memory model for fractionated-gradient
// quantification data: the physical fraction layout, raw and log-transformed
// abundance records, and the quantification store built from measurement
// records.
package gradient

import "fmt"

// The gradient covers three biological samples, each split into an upper and
// a lower layer. Every sample-layer ("block") holds 10 measured fractions;
// in 16-fraction mode those 10 measurements sit inside a 16-slot physical
// layout with fixed gaps (see remap.go).
const (
	NumSamples        = 3
	LayersPerSample   = 2
	NumBlocks         = NumSamples * LayersPerSample
	FractionsMeasured = 10
)

// Mode selects the per-block fraction resolution.
type Mode int

const (
	Mode10 Mode = 10
	Mode16 Mode = 16
)

// ParseMode validates a fraction-count flag value.
func ParseMode(n int) (Mode, error) {
	switch n {
	case 10:
		return Mode10, nil
	case 16:
		return Mode16, nil
	}
	return 0, fmt.Errorf("unsupported fraction count %d (must be 10 or 16)", n)
}

// BlockSize returns the number of slots per sample-layer block.
func (m Mode) BlockSize() int { return int(m) }

// SlotCount returns the total record length for this mode.
func (m Mode) SlotCount() int { return NumBlocks * int(m) }

// Layer identifies the upper or lower layer of a sample.
type Layer int

const (
	LayerUpper Layer = 0
	LayerLower Layer = 1
)

// ParseLayer parses the layer tag used in quantification input.
func ParseLayer(tag string) (Layer, error) {
	switch tag {
	case "u":
		return LayerUpper, nil
	case "l":
		return LayerLower, nil
	}
	return 0, fmt.Errorf("unknown layer tag %q", tag)
}

func (l Layer) String() string {
	if l == LayerUpper {
		return "u"
	}
	return "l"
}

// Block addresses one sample-layer window. Blocks are ordered
// 0=s1-u, 1=s1-l, 2=s2-u, 3=s2-l, 4=s3-u, 5=s3-l.
type Block int

// BlockFor returns the block for a 1-based sample and a layer.
func BlockFor(sample int, layer Layer) Block {
	return Block((sample-1)*LayersPerSample + int(layer))
}

// Sample returns the 1-based sample number of the block.
func (b Block) Sample() int { return int(b)/LayersPerSample + 1 }

// Layer returns the block's layer.
func (b Block) Layer() Layer { return Layer(int(b) % LayersPerSample) }

// Label returns the short block label used in tabular output, e.g. "s1-u".
func (b Block) Label() string {
	return fmt.Sprintf("s%d-%s", b.Sample(), b.Layer())
}

// Start returns the linear index of the block's first slot in the given mode.
func (b Block) Start(mode Mode) int { return int(b) * mode.BlockSize() }

// LinearIndex maps a 1-based sample, a layer and a 1-based fraction number to
// the slot index of a 10-fraction record. Measurements are always recorded at
// 10-fraction resolution; 16-fraction records exist only after remapping.
func LinearIndex(sample int, layer Layer, fraction int) int {
	return BlockFor(sample, layer).Start(Mode10) + fraction - 1
}
