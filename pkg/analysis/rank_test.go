package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

func measured(values ...float64) gradient.LogRecord {
	block := make(gradient.LogRecord, len(values))
	for i, v := range values {
		block[i] = gradient.Intensity{Value: v, OK: true}
	}
	return block
}

func TestRankBlockDistinctValues(t *testing.T) {
	block := measured(5, 1, 4, 2, 3, 0.5, 0.4, 0.3, 0.2, 0.1)
	ranks := RankBlock(block)

	assert.Equal(t, []int{9, 5, 8, 6, 7, 4, 3, 2, 1, 0}, ranks)
}

func TestRankBlockTiesShareARank(t *testing.T) {
	// Two tied at the top: both get 9, the next value drops to 7.
	block := measured(5, 5, 4, 3, 2, 1, 0.5, 0.4, 0.3, 0.2)
	ranks := RankBlock(block)

	assert.Equal(t, []int{9, 9, 7, 6, 5, 4, 3, 2, 1, 0}, ranks)
}

func TestRankBlockAllTied(t *testing.T) {
	// A protein with area 0 everywhere logs to 0 everywhere: the whole
	// block ties at the top rank.
	block := measured(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	ranks := RankBlock(block)

	for i, r := range ranks {
		assert.Equalf(t, topRank, r, "position %d", i)
	}
}

func TestRankBlockMissingNeverRanked(t *testing.T) {
	block := measured(3, 2, 1, 0, -0.5, 0.5, 0.25, 0.125, 2.5, 1.5)
	block[4] = gradient.Intensity{} // not measured

	ranks := RankBlock(block)

	assert.Equal(t, RankMissing, ranks[4])
	for i, r := range ranks {
		if i != 4 {
			assert.GreaterOrEqualf(t, r, 0, "measured position %d must be ranked", i)
		}
	}
}

func TestRankBlock16SlotsCapsAtTen(t *testing.T) {
	values := make([]float64, 16)
	for i := range values {
		values[i] = float64(16 - i)
	}
	ranks := RankBlock(measured(values...))

	// Only the top 10 positions receive a rank.
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, ranks[:10])
	for i := 10; i < 16; i++ {
		assert.Equal(t, RankMissing, ranks[i])
	}
}

func TestRankBlockInvariants(t *testing.T) {
	block := measured(7, 7, 6, 6, 6, 5, 4, 4, 3, 2)
	ranks := RankBlock(block)

	// Ranks stay inside {-1, 0..9}.
	for _, r := range ranks {
		assert.GreaterOrEqual(t, r, -1)
		assert.LessOrEqual(t, r, 9)
	}
	// Equal inputs share a rank; higher values outrank lower ones.
	for i := range block {
		for j := range block {
			if block[i].Value == block[j].Value {
				assert.Equal(t, ranks[i], ranks[j])
			} else if block[i].Value > block[j].Value {
				assert.Greater(t, ranks[i], ranks[j])
			}
		}
	}
	// Tie groups consume rank levels by cardinality.
	assert.Equal(t, []int{9, 9, 7, 7, 7, 4, 3, 3, 1, 0}, ranks)
}

func TestPeakPositionsHoldTopRank(t *testing.T) {
	block := measured(1, 2, 9, 9, 3, 0, 0.5, 4, 2.5, 1.5)
	ranks := RankBlock(block)
	peaks := LocatePeaks(block)

	assert.Equal(t, []int{2, 3}, peaks.Positions)
	for _, p := range peaks.Positions {
		assert.Equal(t, topRank, ranks[p])
	}
}
