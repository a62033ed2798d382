package analysis

import "github.com/yamamoto-tdc/EV-saliva/pkg/gradient"

// PeakSet holds the 0-based block positions attaining a block's maximum log
// intensity. A block with no measured value at all has an empty set, the
// "no data" marker.
type PeakSet struct {
	Positions []int
}

// NoData reports whether the block had no measured value.
func (s PeakSet) NoData() bool { return len(s.Positions) == 0 }

// Contains reports whether position p is among the peaks.
func (s PeakSet) Contains(p int) bool {
	for _, q := range s.Positions {
		if q == p {
			return true
		}
	}
	return false
}

func (s PeakSet) overlaps(t PeakSet) bool {
	for _, p := range s.Positions {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

// LocatePeaks finds every position of a block holding its maximum log
// intensity. Ties yield a multi-position peak.
func LocatePeaks(block gradient.LogRecord) PeakSet {
	var set PeakSet
	max := 0.0
	for i, v := range block {
		if !v.OK {
			continue
		}
		if set.NoData() || v.Value > max {
			set.Positions = set.Positions[:0]
			set.Positions = append(set.Positions, i)
			max = v.Value
		} else if v.Value == max {
			set.Positions = append(set.Positions, i)
		}
	}
	return set
}

// groupPosition coarsens a 16-slot position to a group id comparable with
// the geometry of 10-fraction data. The split at position 12 follows the
// physical fraction layout and must not be regularized.
func groupPosition(p int) int {
	if p < 12 {
		return p / 2
	}
	return p - 7
}

// Grouped maps every peak position through the grouping function. Only
// meaningful for 16-slot blocks.
func (s PeakSet) Grouped() PeakSet {
	if s.NoData() {
		return PeakSet{}
	}
	g := PeakSet{Positions: make([]int, len(s.Positions))}
	for i, p := range s.Positions {
		g.Positions[i] = groupPosition(p)
	}
	return g
}
