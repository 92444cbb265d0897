package numeric

import (
	"math"

	"github.com/csdm-go/csdm/blas"
)

// ConvertElements builds a fresh buffer of dstType holding every element of
// src (of srcType) converted per the module's widening/narrowing rules:
// real -> complex lifts imaginary to 0, complex -> real takes the real part,
// float -> integer truncates toward zero, integer -> float is value
// preserving. The element count is preserved.
func ConvertElements(srcType Type, src []byte, dstType Type) []byte {
	n := ElementCount(srcType, src)
	dst := make([]byte, n*dstType.ElementSize())
	if dstType.IsComplex() {
		for i := 0; i < n; i++ {
			SetComplex128At(dstType, dst, i, Complex128At(srcType, src, i))
		}
		return dst
	}
	for i := 0; i < n; i++ {
		SetFloat64At(dstType, dst, i, Float64At(srcType, src, i))
	}
	return dst
}

// ZeroAll memsets buf to zero bytes.
func ZeroAll(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroPartInRange zeros the requested scalar projection of every element in
// [lo, hi) per §4.3's zero_part_in_range rules:
//   - real element types: PartReal and PartMagnitude zero the scalar value.
//   - complex element types: PartReal zeros the real stride, PartImag zeros
//     the imag stride, PartMagnitude zeros both (equivalent to ZeroAll
//     restricted to the range), PartArgument is destructive: each element
//     becomes |z| with a zero imaginary part.
func ZeroPartInRange(t Type, buf []byte, lo, hi int, part Part) {
	if !t.IsComplex() {
		switch part {
		case PartReal, PartMagnitude:
			if t == F64 {
				// Unit-stride float64 range: scaling by 0 is a BLAS-idiomatic
				// way to zero a strided slice, dispatched per §9's guidance to
				// prefer a *scal*-style kernel when stride patterns match.
				x := ViewF64(buf)[lo:hi]
				blas.Default.ScaleFloat64(0, x, 1)
				return
			}
			for i := lo; i < hi; i++ {
				SetFloat64At(t, buf, i, 0)
			}
		}
		return
	}
	switch part {
	case PartReal:
		for i := lo; i < hi; i++ {
			z := Complex128At(t, buf, i)
			SetComplex128At(t, buf, i, complex(0, imag(z)))
		}
	case PartImag:
		for i := lo; i < hi; i++ {
			z := Complex128At(t, buf, i)
			SetComplex128At(t, buf, i, complex(real(z), 0))
		}
	case PartMagnitude:
		for i := lo; i < hi; i++ {
			SetComplex128At(t, buf, i, 0)
		}
	case PartArgument:
		for i := lo; i < hi; i++ {
			z := Complex128At(t, buf, i)
			mag := math.Hypot(real(z), imag(z))
			SetComplex128At(t, buf, i, complex(mag, 0))
		}
	}
}

// TakeAbsoluteValue applies |x| per element in place for real types
// (signed integers negate negatives, unsigned are unchanged, floats apply
// fabs) and returns the buffer unchanged. For complex types it returns a
// fresh real-typed buffer (c64 -> f32, c128 -> f64) holding |z| per element,
// since the element type is downgraded.
func TakeAbsoluteValue(t Type, buf []byte) (Type, []byte) {
	if !t.IsComplex() {
		n := ElementCount(t, buf)
		for i := 0; i < n; i++ {
			SetFloat64At(t, buf, i, math.Abs(Float64At(t, buf, i)))
		}
		return t, buf
	}
	realType := t.RealCounterpart()
	n := ElementCount(t, buf)
	out := make([]byte, n*realType.ElementSize())
	for i := 0; i < n; i++ {
		SetFloat64At(realType, out, i, PartAt(t, buf, i, PartMagnitude))
	}
	return realType, out
}

// MultiplyByDimensionlessComplexConstant scales every element of buf by k
// in place, per §4.3's rules: integer types round-by-truncation of real(k),
// floats use real(k), complex uses both parts of k.
func MultiplyByDimensionlessComplexConstant(t Type, buf []byte, k complex128) {
	n := ElementCount(t, buf)
	if t.IsComplex() {
		for i := 0; i < n; i++ {
			SetComplex128At(t, buf, i, Complex128At(t, buf, i)*k)
		}
		return
	}
	factor := real(k)
	if t == F64 {
		blas.Default.ScaleFloat64(factor, ViewF64(buf), 1)
		return
	}
	for i := 0; i < n; i++ {
		SetFloat64At(t, buf, i, Float64At(t, buf, i)*factor)
	}
}

// TakeComplexPart implements §4.3's take_complex_part. For real element
// types: real is a no-op, imag zeros the buffer, magnitude is abs, argument
// zeros the buffer. For complex types: real zeros the imag stride, imag
// rotates by -i then zeros the imag stride (moves the imaginary part into
// the real slot), magnitude = abs, argument replaces every element by its
// phase. For complex input the returned type is t itself (the imaginary
// stride is left zero); DependentVariable.TakeComplexPart downgrades the
// element type to the real counterpart, for every part, when all
// components are selected.
func TakeComplexPart(t Type, buf []byte, part Part) (Type, []byte) {
	n := ElementCount(t, buf)
	if !t.IsComplex() {
		switch part {
		case PartReal:
			// no-op
		case PartImag, PartArgument:
			ZeroAll(buf)
		case PartMagnitude:
			for i := 0; i < n; i++ {
				SetFloat64At(t, buf, i, math.Abs(Float64At(t, buf, i)))
			}
		}
		return t, buf
	}

	switch part {
	case PartMagnitude:
		// Stays complex-typed here; the all-components downgrade is the caller's.
		for i := 0; i < n; i++ {
			z := Complex128At(t, buf, i)
			SetComplex128At(t, buf, i, complex(math.Hypot(real(z), imag(z)), 0))
		}
		return t, buf
	case PartReal:
		for i := 0; i < n; i++ {
			z := Complex128At(t, buf, i)
			SetComplex128At(t, buf, i, complex(real(z), 0))
		}
		return t, buf
	case PartImag:
		for i := 0; i < n; i++ {
			z := Complex128At(t, buf, i)
			SetComplex128At(t, buf, i, complex(imag(z), 0))
		}
		return t, buf
	case PartArgument:
		for i := 0; i < n; i++ {
			z := Complex128At(t, buf, i)
			phase := math.Atan2(imag(z), real(z))
			SetComplex128At(t, buf, i, complex(phase, 0))
		}
		return t, buf
	}
	return t, buf
}

// DowngradeComplexToReal converts a complex buffer where the imaginary part
// is now always zero (per TakeComplexPart's real/imag/argument cases when
// applied to every component) into the matching real element type, dropping
// the redundant zero imaginary words.
func DowngradeComplexToReal(t Type, buf []byte) (Type, []byte) {
	if !t.IsComplex() {
		return t, buf
	}
	realType := t.RealCounterpart()
	n := ElementCount(t, buf)
	out := make([]byte, n*realType.ElementSize())
	for i := 0; i < n; i++ {
		SetFloat64At(realType, out, i, real(Complex128At(t, buf, i)))
	}
	return realType, out
}

// Conjugate negates every imaginary stride entry in place; real types are a
// no-op.
func Conjugate(t Type, buf []byte) {
	if !t.IsComplex() {
		return
	}
	n := ElementCount(t, buf)
	for i := 0; i < n; i++ {
		z := Complex128At(t, buf, i)
		SetComplex128At(t, buf, i, complex(real(z), -imag(z)))
	}
}

// ConvertToUnit scales every element of buf by factor in place. Only valid
// for float or complex element types; callers (dependentvariable) must
// reject integer types with UnsupportedOp before calling this.
func ConvertToUnit(t Type, buf []byte, factor float64) {
	n := ElementCount(t, buf)
	if t.IsComplex() {
		for i := 0; i < n; i++ {
			SetComplex128At(t, buf, i, Complex128At(t, buf, i)*complex(factor, 0))
		}
		return
	}
	for i := 0; i < n; i++ {
		SetFloat64At(t, buf, i, Float64At(t, buf, i)*factor)
	}
}
