package analysis

import "github.com/yamamoto-tdc/EV-saliva/pkg/gradient"

// classPairs are the block pairs whose peak coincidence drives
// classification, in comparator order.
var classPairs = [6]Pair{
	{A: 0, B: 1}, // s1-u / s1-l
	{A: 1, B: 2}, // s1-l / s2-u
	{A: 1, B: 4}, // s1-l / s3-u
	{A: 2, B: 3}, // s2-u / s2-l
	{A: 3, B: 4}, // s2-l / s3-u
	{A: 4, B: 5}, // s3-u / s3-l
}

// Flags records, per pair, whether the comparator found the peaks
// coincident. NoData and NotEqual both read as false.
type Flags struct {
	Pair01 bool
	Pair12 bool
	Pair14 bool
	Pair23 bool
	Pair34 bool
	Pair45 bool
}

// Classes is a protein's structural category membership. Type1 is always a
// subset of Type2.
type Classes struct {
	Type1 bool
	Type2 bool
	Type3 bool
}

// topRankPattern names the linear rank indices that must be the unique top
// of their blocks for the type-1 test: one fraction in a sample's upper
// layer and one (or an alternate) in its lower layer.
type topRankPattern struct {
	upper    int
	lower    int
	lowerAlt int // -1 when there is no alternate
}

// The fraction positions are instrument-specific constants; the 16-fraction
// indices are the remapped images of the 10-fraction ones.
var topRankPatterns = map[gradient.Mode][3]topRankPattern{
	gradient.Mode10: {
		{upper: 6, lower: 16, lowerAlt: -1},
		{upper: 25, lower: 35, lowerAlt: -1},
		{upper: 45, lower: 54, lowerAlt: 55},
	},
	gradient.Mode16: {
		{upper: 11, lower: 27, lowerAlt: -1},
		{upper: 41, lower: 57, lowerAlt: -1},
		{upper: 72, lower: 88, lowerAlt: 89},
	},
}

func matchesTopRankPattern(mode gradient.Mode, ranks []int) bool {
	for _, pat := range topRankPatterns[mode] {
		if ranks[pat.upper] != topRank {
			continue
		}
		if ranks[pat.lower] == topRank {
			return true
		}
		if pat.lowerAlt >= 0 && ranks[pat.lowerAlt] == topRank {
			return true
		}
	}
	return false
}

// classify derives category membership from the pair flags and the rank
// pattern. Type2 needs any within-sample pair to coincide, type3 all three;
// type1 additionally needs the top-rank pattern.
func classify(mode gradient.Mode, flags Flags, ranks []int) Classes {
	c := Classes{
		Type2: flags.Pair01 || flags.Pair23 || flags.Pair45,
		Type3: flags.Pair01 && flags.Pair23 && flags.Pair45,
	}
	c.Type1 = c.Type2 && matchesTopRankPattern(mode, ranks)
	return c
}
