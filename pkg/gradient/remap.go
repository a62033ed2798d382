package gradient

// The 16-slot physical layout of each block. Entry d of a table names the
// 0-based measured fraction stored at destination slot d, or gapSlot where
// the collector left no measurable fraction. The tables reflect the
// instrument's fraction layout: both layers of sample 1 share one layout,
// both layers of sample 2 share another, and the two layers of sample 3 each
// have their own.
const gapSlot = -1

var sample1Layout = [16]int{0, gapSlot, 1, gapSlot, 2, gapSlot, 3, gapSlot, 4, gapSlot, 5, 6, gapSlot, 7, 8, 9}

var sample2Layout = [16]int{0, 1, gapSlot, 2, gapSlot, 3, gapSlot, 4, gapSlot, 5, gapSlot, 6, gapSlot, 7, 8, 9}

var sample3UpperLayout = [16]int{0, gapSlot, 1, 2, gapSlot, 3, 4, gapSlot, 5, gapSlot, 6, gapSlot, 7, gapSlot, 8, 9}

var sample3LowerLayout = [16]int{0, gapSlot, 1, gapSlot, 2, gapSlot, 3, gapSlot, 4, 5, gapSlot, 6, 7, gapSlot, 8, 9}

// blockLayouts assigns a physical layout to every block.
var blockLayouts = [NumBlocks]*[16]int{
	&sample1Layout,
	&sample1Layout,
	&sample2Layout,
	&sample2Layout,
	&sample3UpperLayout,
	&sample3LowerLayout,
}

// Remap re-indexes a 60-slot record into the 96-slot physical layout,
// placing each block's 10 measured values at their layout positions and
// marking the 6 gap slots missing. Destinations are filled back-to-front so
// a measured value is never overwritten before it has been moved. Applying
// Remap to an already-remapped record is undefined; callers remap at most
// once per record.
func Remap(rec QuantRecord) QuantRecord {
	out := make(QuantRecord, Mode16.SlotCount())
	copy(out, rec)
	for b := NumBlocks - 1; b >= 0; b-- {
		layout := blockLayouts[b]
		src := b * Mode10.BlockSize()
		dst := b * Mode16.BlockSize()
		for d := Mode16.BlockSize() - 1; d >= 0; d-- {
			if k := layout[d]; k == gapSlot {
				out[dst+d] = AreaMissing
			} else {
				out[dst+d] = out[src+k]
			}
		}
	}
	return out
}
