package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamamoto-tdc/EV-saliva/pkg/analysis"
	"github.com/yamamoto-tdc/EV-saliva/pkg/gradient"
)

func testCatalog(t *testing.T) *gradient.Catalog {
	t.Helper()
	cat, err := gradient.Load([]gradient.Measurement{
		{Sample: 1, Layer: gradient.LayerUpper, Fraction: 3, Accession: "P1", Area: 500},
		{Sample: 1, Layer: gradient.LayerLower, Fraction: 3, Accession: "P1", Area: 500},
		{Sample: 2, Layer: gradient.LayerUpper, Fraction: 1, Accession: "P1", Area: 100},
	}, gradient.Mode10)
	require.NoError(t, err)
	return cat
}

func TestWriteAreaGrid(t *testing.T) {
	cat := testCatalog(t)
	p, _ := cat.Get("P1")

	var sb strings.Builder
	require.NoError(t, WriteAreaGrid(&sb, p, cat.Mode()))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for i, line := range lines {
		assert.Lenf(t, strings.Split(line, "\t"), 10, "row %d", i)
	}
	assert.Equal(t, "-1\t-1\t500\t-1\t-1\t-1\t-1\t-1\t-1\t-1", lines[0])
}

func TestWriteRankGrid(t *testing.T) {
	cat := testCatalog(t)
	p, _ := cat.Get("P1")
	prof := analysis.NewProfile(p, cat.Mode())

	var sb strings.Builder
	require.NoError(t, WriteRankGrid(&sb, prof))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "-1\t-1\t9\t-1\t-1\t-1\t-1\t-1\t-1\t-1", lines[0])
	// Block without data is all -1.
	wantMissing := strings.Repeat("-1\t", 9) + "-1"
	assert.Equal(t, wantMissing, lines[3])
}

func TestWritePeaks(t *testing.T) {
	cat := testCatalog(t)
	p, _ := cat.Get("P1")
	prof := analysis.NewProfile(p, cat.Mode())

	var sb strings.Builder
	require.NoError(t, WritePeaks(&sb, prof))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "s1-u\t2", lines[0])
	assert.Equal(t, "s2-u\t0", lines[2])
	assert.Equal(t, "s3-l\tno data", lines[5])
}

func TestWriteSummary(t *testing.T) {
	cat := testCatalog(t)

	var sb strings.Builder
	require.NoError(t, WriteSummary(&sb, cat))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 8) // protein count + header + 6 blocks
	assert.Equal(t, "proteins\t1", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "s1-u\t1\t"))
	assert.True(t, strings.HasPrefix(lines[5], "s2-l\t0\t"))
}
