package blas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGonumScaleFloat64UnitStride(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	Gonum{}.ScaleFloat64(2.0, x, 1)
	require.Equal(t, []float64{2, 4, 6, 8}, x)
}

func TestGonumScaleFloat64EmptyIsNoOp(t *testing.T) {
	var x []float64
	require.NotPanics(t, func() { Gonum{}.ScaleFloat64(3.0, x, 1) })
}

func TestDefaultIsGonum(t *testing.T) {
	_, ok := Default.(Gonum)
	require.True(t, ok)
}
