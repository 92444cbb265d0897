// Package blas specifies the narrow BLAS-like kernel contract the core
// consumes for in-place scaling of strided numeric arrays (see §9's design
// note: "only its contract is specified"), and provides a concrete
// implementation backed by gonum.org/v1/gonum/blas/blas64, grounded on the
// gonum.org/v1/gonum/mat usage found elsewhere in the retrieval pack.
//
// numeric.ZeroPartInRange and numeric.MultiplyByDimensionlessComplexConstant
// (reached through the DependentVariable methods of the same names) call
// Default.ScaleFloat64 with unit stride when the element type is float64;
// every other element type goes through an explicit element loop in the
// numeric package.
package blas

import "gonum.org/v1/gonum/blas/blas64"

// Scaler performs in-place scaling of a strided float64 array: x[i*inc] *=
// alpha for i in [0, n).
type Scaler interface {
	ScaleFloat64(alpha float64, x []float64, inc int)
}

// Gonum is a Scaler backed by blas64.Dscal.
type Gonum struct{}

// ScaleFloat64 implements Scaler using gonum's reference BLAS Dscal.
func (Gonum) ScaleFloat64(alpha float64, x []float64, inc int) {
	if len(x) == 0 {
		return
	}
	n := (len(x) + inc - 1) / inc
	blas64.Implementation().Dscal(n, alpha, x, inc)
}

// Default is the package-level Scaler used unless a caller supplies its own.
var Default Scaler = Gonum{}
