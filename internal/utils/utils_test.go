package utils

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumSliceAndAverage(t *testing.T) {
	assert.Equal(t, 10, SumSlice([]int{1, 2, 3, 4}))
	assert.InDelta(t, 2.5, Average([]float64{1, 2, 3, 4}), 1e-12)
}

func TestMeanAndVariance(t *testing.T) {
	mean, variance := MeanAndVariance([]float64{2, 4, 4, 4, 5, 5, 7, 9}, false)
	assert.InDelta(t, 5., mean, 1e-12)
	assert.InDelta(t, 4., variance, 1e-12)

	_, unbiased := MeanAndVariance([]float64{2, 4, 4, 4, 5, 5, 7, 9}, true)
	assert.InDelta(t, 32./7., unbiased, 1e-12)
}

func TestTableIntegrate(t *testing.T) {
	// integral of a constant 1 over 10 steps of 0.1
	table := make([]float64, 10)
	for i := range table {
		table[i] = 1.
	}
	assert.InDelta(t, 1., TableIntegrate(table, nil, 0.1), 1e-12)

	// weighting by the grid point
	weighted := TableIntegrate(table, func(x float64) float64 { return x }, 0.1)
	assert.InDelta(t, 0.45, weighted, 1e-12)
}

func TestEnergyConversions(t *testing.T) {
	assert.InDelta(t, 1.602176634e-19, EV2J(1.), 1e-30)
	assert.InDelta(t, 1., J2eV(EV2J(1.)), 1e-12)

	// 10 keV electron is mildly relativistic-free at sqrt(2E/m)
	v := EV2Velocity(10e3, 9.1093837015e-31)
	assert.InEpsilon(t, 5.931e7, v, 1e-3)
}

func TestIntersect(t *testing.T) {
	found := Intersect([]string{"keV", "eV"}, []string{"eV", "s"})
	require.NotNil(t, found)
	assert.Equal(t, "keV", *found) // first of a wins

	assert.Nil(t, Intersect([]string{"keV"}, []string{"s"}))
}

func TestTernarySearchMax(t *testing.T) {
	top := TernarySearchMax(func(x float64) float64 { return -(x - 2.) * (x - 2.) }, 0., 5., 1e-9)
	assert.InDelta(t, 2., top, 1e-6)
}

func TestBinarySearch(t *testing.T) {
	below, above := BinarySearch(func(x float64) bool { return x*x > 2. }, 0., 10., 1e-9)
	assert.InDelta(t, math.Sqrt2, above, 1e-6)
	assert.LessOrEqual(t, below, above)
}

func TestReadFloatPairs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.txt")
	require.NoError(t, os.WriteFile(path, []byte("1e20 10\n\n2e20 15\n"), 0644))

	pairs, err := ReadFloatPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, []float64{1e20, 10}, pairs[0])
	assert.Equal(t, []float64{2e20, 15}, pairs[1])
}

func TestReadFloatPairsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1e20 10 3\n"), 0644))
	_, err := ReadFloatPairs(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("1e20 abc\n"), 0644))
	_, err = ReadFloatPairs(path)
	assert.Error(t, err)

	_, err = ReadFloatPairs(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestGetFilename(t *testing.T) {
	assert.Equal(t, "profile", GetFilename("some/dir/profile.txt"))
	assert.Equal(t, "profile", GetFilename("profile"))
}

func TestWriteAsCSVNaturalOrder(t *testing.T) {
	dir := t.TempDir() + "/"
	data := CSV{
		{"burn_l10", "1"},
		{"burn_l2", "2"},
		{"burn_l1", "3"},
	}
	require.NoError(t, WriteAsCSV(data, dir, "", "summary", []string{"scenario", "value"}))

	content, err := os.ReadFile(dir + "summary_.txt")
	require.NoError(t, err)
	text := string(content)
	assert.Less(t, strings.Index(text, "burn_l1,"), strings.Index(text, "burn_l2,"))
	assert.Less(t, strings.Index(text, "burn_l2,"), strings.Index(text, "burn_l10,"))
}
