package analysis

import "github.com/yamamoto-tdc/EV-saliva/pkg/gradient"

// Outcome is the result of comparing the peaks of two blocks.
type Outcome int

const (
	NotEqual Outcome = iota
	Equal
	NoData
)

func (o Outcome) String() string {
	switch o {
	case Equal:
		return "equal"
	case NotEqual:
		return "not-equal"
	}
	return "no-data"
}

// Pair names an ordered block pair fed to the comparator.
type Pair struct {
	A, B gradient.Block
}

// directPairs are compared on raw fraction positions even in 16-fraction
// mode: their two blocks share the same physical layout, so index-exact
// comparison stays meaningful across resolutions.
var directPairs = map[Pair]bool{
	{A: 0, B: 1}: true,
	{A: 2, B: 3}: true,
}

// The s3-upper/s3-lower boundary: a peak in fraction 5 of the upper layer
// and fraction 4 of the lower layer sit in adjacent collected fractions and
// are treated as coincident. The tolerance is directional and applies only
// in 10-fraction mode (in 16-fraction mode this pair is compared grouped).
var orangePair = Pair{A: 4, B: 5}

const (
	orangeUpperPeak = 5
	orangeLowerPeak = 4
)

// Compare determines whether two blocks' peaks coincide. A block without
// data short-circuits to NoData. Direct pairs and all 10-fraction pairs
// match on any shared raw position, with the adjacent-fraction tolerance for
// the s3 pair; every other 16-fraction pair matches on shared group ids.
func Compare(mode gradient.Mode, pair Pair, a, b PeakSet) Outcome {
	if a.NoData() || b.NoData() {
		return NoData
	}
	if mode == gradient.Mode10 || directPairs[pair] {
		if a.overlaps(b) {
			return Equal
		}
		if pair == orangePair && a.Contains(orangeUpperPeak) && b.Contains(orangeLowerPeak) {
			return Equal
		}
		return NotEqual
	}
	if a.Grouped().overlaps(b.Grouped()) {
		return Equal
	}
	return NotEqual
}
