package analysis

import "github.com/yamamoto-tdc/EV-saliva/pkg/gradient"

// Profile is the derived working state for one protein: peaks, ranks,
// comparator flags and classification. It is a value object computed in one
// shot from the protein's log record and never mutated afterwards, so
// per-protein work can run independently.
type Profile struct {
	Accession string
	Mode      gradient.Mode
	Peaks     [gradient.NumBlocks]PeakSet
	Ranks     []int // linear, co-indexed with the protein's records
	Outcomes  [6]Outcome
	Flags     Flags
	Classes   Classes
}

// NewProfile computes the full derived state for one protein.
func NewProfile(p *gradient.Protein, mode gradient.Mode) *Profile {
	prof := &Profile{
		Accession: p.Accession,
		Mode:      mode,
		Ranks:     make([]int, mode.SlotCount()),
	}

	for b := gradient.Block(0); b < gradient.NumBlocks; b++ {
		block := p.Log.Block(b, mode)
		prof.Peaks[b] = LocatePeaks(block)
		copy(prof.Ranks[b.Start(mode):], RankBlock(block))
	}

	for i, pair := range classPairs {
		prof.Outcomes[i] = Compare(mode, pair, prof.Peaks[pair.A], prof.Peaks[pair.B])
	}
	prof.Flags = Flags{
		Pair01: prof.Outcomes[0] == Equal,
		Pair12: prof.Outcomes[1] == Equal,
		Pair14: prof.Outcomes[2] == Equal,
		Pair23: prof.Outcomes[3] == Equal,
		Pair34: prof.Outcomes[4] == Equal,
		Pair45: prof.Outcomes[5] == Equal,
	}
	prof.Classes = classify(mode, prof.Flags, prof.Ranks)
	return prof
}

// BlockRanks returns the rank window of one block.
func (p *Profile) BlockRanks(b gradient.Block) []int {
	start := b.Start(p.Mode)
	return p.Ranks[start : start+p.Mode.BlockSize()]
}

// PairFlag reports whether a sample's upper and lower layer peaks coincide.
// Sample is 1-based.
func (p *Profile) PairFlag(sample int) bool {
	switch sample {
	case 1:
		return p.Flags.Pair01
	case 2:
		return p.Flags.Pair23
	default:
		return p.Flags.Pair45
	}
}
