package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStridesDim0Fastest(t *testing.T) {
	require.Equal(t, []int{1, 3, 12}, Strides([]int{3, 4, 2}))
}

func TestProduct(t *testing.T) {
	require.Equal(t, 24, Product([]int{3, 4, 2}))
	require.Equal(t, 1, Product(nil))
}

func TestProductIgnoring(t *testing.T) {
	ignored := map[int]struct{}{1: {}}
	require.Equal(t, 6, ProductIgnoring([]int{3, 4, 2}, ignored))
}

func TestFlattenAndUnflattenRoundTrip(t *testing.T) {
	npts := []int{3, 4}
	for offset := 0; offset < Product(npts); offset++ {
		idx := Unflatten(offset, npts)
		back, err := Flatten(idx, npts)
		require.NoError(t, err)
		require.Equal(t, offset, back)
	}
}

func TestFlattenShapeMismatch(t *testing.T) {
	_, err := Flatten([]int{0}, []int{3, 4})
	require.Error(t, err)
}

func TestFlattenWrapsNegativeAndOutOfRangeIndexes(t *testing.T) {
	offset, err := Flatten([]int{-1, 0}, []int{3, 4})
	require.NoError(t, err)
	wrapped, err := Flatten([]int{2, 0}, []int{3, 4})
	require.NoError(t, err)
	require.Equal(t, wrapped, offset)
}

// TestE4CrossSectionStride exercises the grid arithmetic behind scenario E4:
// a 2-D dataset with dims of count 3 and 4, values [0..12), fixing dim 0 at
// coordinate 1 yields offsets 1, 4, 7, 10.
func TestE4CrossSectionStride(t *testing.T) {
	npts := []int{3, 4}
	var offsets []int
	for k := 0; k < 4; k++ {
		off, err := Flatten([]int{1, k}, npts)
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	require.Equal(t, []int{1, 4, 7, 10}, offsets)
}

func TestUnflattenIgnoringLeavesIgnoredDimsAtZero(t *testing.T) {
	ignored := map[int]struct{}{0: {}}
	out := UnflattenIgnoring(5, []int{3, 4}, ignored)
	require.Equal(t, 0, out[0])
	require.Equal(t, 1, out[1])
}

func TestCoordinateIndexFromOffset(t *testing.T) {
	npts := []int{3, 4}
	c0, err := CoordinateIndexFromOffset(10, npts, 0)
	require.NoError(t, err)
	require.Equal(t, 1, c0)

	c1, err := CoordinateIndexFromOffset(10, npts, 1)
	require.NoError(t, err)
	require.Equal(t, 3, c1)
}

func TestCoordinateIndexFromOffsetOutOfRangeDimension(t *testing.T) {
	_, err := CoordinateIndexFromOffset(0, []int{3, 4}, 5)
	require.Error(t, err)
}
