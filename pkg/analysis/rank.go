// Package analysis implements the quantitative core: per-block rank
// orderings, abundance peak location and grouping, the pairwise peak
// comparator, and the structural classification derived from it. All state
// is per-protein and recomputed fresh; nothing here is shared across
// proteins.
package analysis

import "github.com/yamamoto-tdc/EV-saliva/pkg/gradient"

// topRank is the rank of a block's most abundant fraction. Ranks count down
// from here; at most 10 positions per block receive a rank.
const topRank = 9

// RankMissing marks a slot that is unmeasured or not among the block's top
// 10 values.
const RankMissing = -1

// RankBlock ranks one block of log intensities. Tied values share a rank and
// the tie group consumes as many rank levels as it has members, so the next
// group's rank drops by the group size. Ranking stops once the levels 9..0
// are used up; anything left (possible only in 16-slot blocks) and every
// missing slot keeps RankMissing. Ties are exact floating-point equality on
// the log values.
func RankBlock(block gradient.LogRecord) []int {
	ranks := make([]int, len(block))
	for i := range ranks {
		ranks[i] = RankMissing
	}

	unranked := make([]int, 0, len(block))
	for i, v := range block {
		if v.OK {
			unranked = append(unranked, i)
		}
	}

	level := topRank
	for level >= 0 && len(unranked) > 0 {
		max := block[unranked[0]].Value
		for _, i := range unranked[1:] {
			if block[i].Value > max {
				max = block[i].Value
			}
		}

		rest := unranked[:0]
		tied := 0
		for _, i := range unranked {
			if block[i].Value == max {
				ranks[i] = level
				tied++
			} else {
				rest = append(rest, i)
			}
		}
		unranked = rest
		level -= tied
	}
	return ranks
}
