package numeric

import (
	"math/cmplx"
	"unsafe"
)

// viewAs reinterprets buf as a slice of T without copying. buf's byte length
// must be a multiple of sizeof(T); callers (dependentvariable) are
// responsible for enforcing that invariant before calling into numeric.
func viewAs[T any](buf []byte) []T {
	if len(buf) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	n := len(buf) / size
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n)
}

func ViewI8(buf []byte) []int8     { return viewAs[int8](buf) }
func ViewI16(buf []byte) []int16   { return viewAs[int16](buf) }
func ViewI32(buf []byte) []int32   { return viewAs[int32](buf) }
func ViewI64(buf []byte) []int64   { return viewAs[int64](buf) }
func ViewU8(buf []byte) []uint8    { return viewAs[uint8](buf) }
func ViewU16(buf []byte) []uint16  { return viewAs[uint16](buf) }
func ViewU32(buf []byte) []uint32  { return viewAs[uint32](buf) }
func ViewU64(buf []byte) []uint64  { return viewAs[uint64](buf) }
func ViewF32(buf []byte) []float32 { return viewAs[float32](buf) }
func ViewF64(buf []byte) []float64 { return viewAs[float64](buf) }
func ViewC64(buf []byte) []complex64  { return viewAs[complex64](buf) }
func ViewC128(buf []byte) []complex128 { return viewAs[complex128](buf) }

// Part selects which scalar projection of a (possibly complex) value to
// read or zero.
type Part uint8

const (
	PartReal Part = iota
	PartImag
	PartMagnitude
	PartArgument
)

// Float64At reads the element at i (wrapped modulo the buffer's element
// count per §8 property 15) as a float64, regardless of t's concrete width.
func Float64At(t Type, buf []byte, i int) float64 {
	i = wrapIndex(i, ElementCount(t, buf))
	switch t {
	case I8:
		return float64(ViewI8(buf)[i])
	case I16:
		return float64(ViewI16(buf)[i])
	case I32:
		return float64(ViewI32(buf)[i])
	case I64:
		return float64(ViewI64(buf)[i])
	case U8:
		return float64(ViewU8(buf)[i])
	case U16:
		return float64(ViewU16(buf)[i])
	case U32:
		return float64(ViewU32(buf)[i])
	case U64:
		return float64(ViewU64(buf)[i])
	case F32:
		return float64(ViewF32(buf)[i])
	case F64:
		return ViewF64(buf)[i]
	case C64:
		return real(ViewC64(buf)[i])
	case C128:
		return real(ViewC128(buf)[i])
	}
	return 0
}

// Complex128At reads the element at i as a complex128; real element types
// are returned with a zero imaginary part.
func Complex128At(t Type, buf []byte, i int) complex128 {
	i = wrapIndex(i, ElementCount(t, buf))
	if t == C64 {
		return complex128(ViewC64(buf)[i])
	}
	if t == C128 {
		return ViewC128(buf)[i]
	}
	return complex(Float64At(t, buf, i), 0)
}

// PartAt reads part of the element at i.
func PartAt(t Type, buf []byte, i int, part Part) float64 {
	if !t.IsComplex() {
		v := Float64At(t, buf, i)
		switch part {
		case PartReal:
			return v
		case PartImag:
			return 0
		case PartMagnitude:
			return v
		case PartArgument:
			return 0
		}
	}
	z := Complex128At(t, buf, i)
	switch part {
	case PartReal:
		return real(z)
	case PartImag:
		return imag(z)
	case PartMagnitude:
		return cmplx.Abs(z)
	case PartArgument:
		return cmplx.Phase(z)
	}
	return 0
}

// SetFloat64At writes v into the element at i, converting to t's concrete
// width. i is wrapped the same way Float64At wraps it.
func SetFloat64At(t Type, buf []byte, i int, v float64) {
	i = wrapIndex(i, ElementCount(t, buf))
	switch t {
	case I8:
		ViewI8(buf)[i] = int8(v)
	case I16:
		ViewI16(buf)[i] = int16(v)
	case I32:
		ViewI32(buf)[i] = int32(v)
	case I64:
		ViewI64(buf)[i] = int64(v)
	case U8:
		ViewU8(buf)[i] = uint8(v)
	case U16:
		ViewU16(buf)[i] = uint16(v)
	case U32:
		ViewU32(buf)[i] = uint32(v)
	case U64:
		ViewU64(buf)[i] = uint64(v)
	case F32:
		ViewF32(buf)[i] = float32(v)
	case F64:
		ViewF64(buf)[i] = v
	case C64:
		c := ViewC64(buf)
		c[i] = complex(float32(v), imag(c[i]))
	case C128:
		c := ViewC128(buf)
		c[i] = complex(v, imag(c[i]))
	}
}

// SetComplex128At writes z into the element at i; real element types store
// only the real part.
func SetComplex128At(t Type, buf []byte, i int, z complex128) {
	i = wrapIndex(i, ElementCount(t, buf))
	switch t {
	case C64:
		ViewC64(buf)[i] = complex64(z)
	case C128:
		ViewC128(buf)[i] = z
	default:
		SetFloat64At(t, buf, i, real(z))
	}
}

// ElementCount returns how many elements of type t fit in buf.
func ElementCount(t Type, buf []byte) int {
	size := t.ElementSize()
	if size == 0 {
		return 0
	}
	return len(buf) / size
}

// wrapIndex implements wrap(v, n) = ((v mod n) + n) mod n, making negative
// offsets legal (§8 property 15: offset -1 on a buffer of size S reads
// element S-1).
func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
