package colormap

import "testing"

func TestForRank(t *testing.T) {
	if got := ForRank(9); got != "#ff0000" {
		t.Errorf("ForRank(9) = %s, want #ff0000", got)
	}
	if got := ForRank(0); got != "#008000" {
		t.Errorf("ForRank(0) = %s, want #008000", got)
	}
	if got := ForRank(-1); got != Missing {
		t.Errorf("ForRank(-1) = %s, want %s", got, Missing)
	}
}

func TestBucketsDistinct(t *testing.T) {
	seen := map[string]int{}
	for rank := 0; rank <= 9; rank++ {
		c := ForRank(rank)
		if c == Missing {
			t.Errorf("rank %d maps to the missing color", rank)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("ranks %d and %d share color %s", prev, rank, c)
		}
		seen[c] = rank
	}
}
