// Package numeric implements the CSDM NumericType enum and the
// dispatch-once-per-buffer machinery used by dependentvariable's in-place
// transforms.
//
// Typed slice views of a buffer come from the generic viewAs[T] in view.go;
// the per-element accessors (Float64At, SetFloat64At, Complex128At, ...)
// switch on the Type at every call. The enum itself, its element-size table, and its wire names
// mirror the narrow, validated-enum style of
// github.com/arloliu/mebo/format.EncodingType.
package numeric

import "github.com/csdm-go/csdm/errs"

// Type is the twelve-element NumericType enum.
type Type uint8

const (
	I8 Type = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	C64
	C128
)

var allTypes = [...]Type{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, C64, C128}

// wireNames are the stable on-disk names from the spec's NumericType wire
// table (§6.1).
var wireNames = map[Type]string{
	I8: "int8", I16: "int16", I32: "int32", I64: "int64",
	U8: "uint8", U16: "uint16", U32: "uint32", U64: "uint64",
	F32: "float32", F64: "float64",
	C64: "complex64", C128: "complex128",
}

var fromWireName = func() map[string]Type {
	m := make(map[string]Type, len(wireNames))
	for t, n := range wireNames {
		m[n] = t
	}
	return m
}()

var elementSizes = map[Type]int{
	I8: 1, I16: 2, I32: 4, I64: 8,
	U8: 1, U16: 2, U32: 4, U64: 8,
	F32: 4, F64: 8,
	C64: 8, C128: 16,
}

// String returns the stable wire name.
func (t Type) String() string {
	if n, ok := wireNames[t]; ok {
		return n
	}
	return "unknown"
}

// ElementSize returns the per-element size in bytes for t.
func (t Type) ElementSize() int {
	return elementSizes[t]
}

// IsComplex reports whether t is c64 or c128.
func (t Type) IsComplex() bool { return t == C64 || t == C128 }

// IsFloat reports whether t is f32, f64, c64, or c128 — i.e. any type for
// which convert_to_unit is legal.
func (t Type) IsFloat() bool {
	switch t {
	case F32, F64, C64, C128:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is one of the eight integer variants.
func (t Type) IsInteger() bool { return !t.IsFloat() }

// IsSigned reports whether t is a signed integer type.
func (t Type) IsSigned() bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// RealCounterpart returns the real element type produced when a complex type
// is downgraded (c64 -> f32, c128 -> f64). It is a no-op for real types.
func (t Type) RealCounterpart() Type {
	switch t {
	case C64:
		return F32
	case C128:
		return F64
	default:
		return t
	}
}

// ParseType resolves a wire name to a Type.
func ParseType(name string) (Type, error) {
	t, ok := fromWireName[name]
	if !ok {
		return 0, &errs.DecodeError{Source: "numeric_type", Reason: "unrecognized NumericType " + name}
	}
	return t, nil
}

// AllTypes returns every NumericType variant, in enum order.
func AllTypes() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes[:])
	return out
}
