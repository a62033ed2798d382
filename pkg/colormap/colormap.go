// Package colormap holds the fixed rank-to-color scale used by the heat-map
// renderer.
package colormap

// scale maps rank 0..9 to a hex color, warm red for the top rank down to
// cool green for the lowest. The buckets are a fixed lookup, not an
// interpolation.
var scale = [10]string{
	"#008000", // rank 0
	"#32cd32",
	"#7cfc00",
	"#adff2f",
	"#ffff00",
	"#ffd700",
	"#ffa500",
	"#ff8c00",
	"#ff4500",
	"#ff0000", // rank 9
}

// Missing is the fill for slots with no data or a rank outside the top 10.
const Missing = "#c8c8c8"

// ForRank returns the bucket color for a rank, or Missing for rank -1.
func ForRank(rank int) string {
	if rank < 0 || rank > 9 {
		return Missing
	}
	return scale[rank]
}

// Scale returns the bucket colors ordered from rank 0 to rank 9.
func Scale() [10]string { return scale }
