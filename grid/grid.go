// Package grid implements CSDM's multi-index <-> linear-offset arithmetic.
// Dimension 0 varies fastest (the grid is stored in Fortran/column-major
// order), matching the reference implementation's memOffsetFromIndexes /
// setIndexesForMemOffset pair.
package grid

import "github.com/csdm-go/csdm/errs"

// Strides returns the per-dimension stride for a grid whose dimension sizes
// are npts, with dimension 0 fastest-varying: strides[0] == 1,
// strides[i] == product(npts[:i]).
func Strides(npts []int) []int {
	out := make([]int, len(npts))
	stride := 1
	for i, n := range npts {
		out[i] = stride
		stride *= n
	}
	return out
}

// Product returns the total number of grid points across npts.
func Product(npts []int) int {
	total := 1
	for _, n := range npts {
		total *= n
	}
	return total
}

// ProductIgnoring returns the total number of grid points across npts,
// skipping any dimension index present in ignored.
func ProductIgnoring(npts []int, ignored map[int]struct{}) int {
	total := 1
	for i, n := range npts {
		if _, skip := ignored[i]; skip {
			continue
		}
		total *= n
	}
	return total
}

func wrap(idx, n int) int {
	if n == 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Flatten folds a per-dimension index tuple into a linear offset, wrapping
// negative or out-of-range components the way the reference grid math does
// (§4.3's "wrap-around negative offsets").
func Flatten(indexes, npts []int) (int, error) {
	if len(indexes) != len(npts) {
		return 0, &errs.ShapeError{Field: "indexes", Want: len(npts), Got: len(indexes)}
	}
	if len(npts) == 0 {
		return 0, nil
	}
	offset := wrap(indexes[len(npts)-1], npts[len(npts)-1])
	for i := len(npts) - 2; i >= 0; i-- {
		offset *= npts[i]
		offset += wrap(indexes[i], npts[i])
	}
	return offset, nil
}

// Unflatten expands a linear offset into a per-dimension index tuple.
func Unflatten(offset int, npts []int) []int {
	out := make([]int, len(npts))
	hyper := 1
	for i, n := range npts {
		if n == 0 {
			out[i] = 0
			continue
		}
		out[i] = (offset / hyper) % n
		hyper *= n
	}
	return out
}

// UnflattenIgnoring expands a reduced linear offset into a per-dimension
// index tuple, skipping any dimension index present in ignored (those
// entries are left at 0); mirrors
// setIndexesForReducedMemOffsetIgnoringDimensions.
func UnflattenIgnoring(offset int, npts []int, ignored map[int]struct{}) []int {
	out := make([]int, len(npts))
	hyper := 1
	for i, n := range npts {
		if _, skip := ignored[i]; skip {
			continue
		}
		if n == 0 {
			continue
		}
		out[i] = (offset / hyper) % n
		hyper *= n
	}
	return out
}

// CoordinateIndexFromOffset returns the coordinate index along dimensionIndex
// implied by the given linear offset.
func CoordinateIndexFromOffset(offset int, npts []int, dimensionIndex int) (int, error) {
	if dimensionIndex < 0 || dimensionIndex >= len(npts) {
		return 0, &errs.InvalidArgumentError{Field: "dimension_index", Reason: "out of range"}
	}
	hyper := 1
	for i := 0; i <= dimensionIndex; i++ {
		n := npts[i]
		if n == 0 {
			return 0, nil
		}
		coord := (offset / hyper) % n
		if i == dimensionIndex {
			return coord, nil
		}
		hyper *= n
	}
	return 0, nil
}
