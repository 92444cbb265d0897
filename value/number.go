package value

import "strconv"

// Number is a tagged numeric scalar: it remembers whether it was produced
// from an integer or floating-point literal so that round-tripping through
// JSON preserves the original textual shape where possible.
type Number struct {
	f       float64
	isFloat bool
}

// Int creates an integer-tagged Number.
func Int(v int64) Number { return Number{f: float64(v), isFloat: false} }

// Float creates a float-tagged Number.
func Float(v float64) Number { return Number{f: v, isFloat: true} }

// Float64 returns the number as a float64 regardless of its tag.
func (n Number) Float64() float64 { return n.f }

// Int64 truncates the number toward zero.
func (n Number) Int64() int64 { return int64(n.f) }

// IsFloat reports whether the number was tagged as floating point.
func (n Number) IsFloat() bool { return n.isFloat }

func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int64(), 10)
}
