// Package value provides the foundational value kinds the CSDM object graph
// is built from: an ordered string-keyed Mapping, an ordered Array, an
// IndexPairSet of (dimension, index) pairs, a resizable BytesBuffer, and a
// tagged Number.
//
// These are thin, explicit identity types rather than a duck-typed "any"
// container: specialized accessors downcast with a typed error instead of
// silently coercing, the same discipline endian.Engine applies by
// combining exactly the two stdlib interfaces it needs instead of accepting
// bare []byte.
package value

import (
	"fmt"

	"github.com/csdm-go/csdm/errs"
)

// Kind identifies which concrete value kind a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindArray
	KindMapping
	KindIndexPairSet
	KindBytesBuffer
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindMapping:
		return "mapping"
	case KindIndexPairSet:
		return "index_pair_set"
	case KindBytesBuffer:
		return "bytes_buffer"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is the closed sum type backing Mapping and Array elements.
type Value struct {
	kind    Kind
	str     string
	num     Number
	boolean bool
	arr     *Array
	mapping *Mapping
	pairSet *IndexPairSet
	bytes   *BytesBuffer
}

func Null() Value                       { return Value{kind: KindNull} }
func FromString(s string) Value         { return Value{kind: KindString, str: s} }
func FromNumber(n Number) Value         { return Value{kind: KindNumber, num: n} }
func FromBool(b bool) Value             { return Value{kind: KindBoolean, boolean: b} }
func FromArray(a *Array) Value          { return Value{kind: KindArray, arr: a} }
func FromMapping(m *Mapping) Value      { return Value{kind: KindMapping, mapping: m} }
func FromIndexPairSet(p *IndexPairSet) Value {
	return Value{kind: KindIndexPairSet, pairSet: p}
}
func FromBytes(b *BytesBuffer) Value { return Value{kind: KindBytesBuffer, bytes: b} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) typeErr(want string) error {
	return &errs.TypeMismatchError{Field: "value", Want: want, Got: v.kind.String()}
}

func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", v.typeErr("string")
	}
	return v.str, nil
}

func (v Value) Number() (Number, error) {
	if v.kind != KindNumber {
		return Number{}, v.typeErr("number")
	}
	return v.num, nil
}

func (v Value) Bool() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.typeErr("boolean")
	}
	return v.boolean, nil
}

func (v Value) Array() (*Array, error) {
	if v.kind != KindArray {
		return nil, v.typeErr("array")
	}
	return v.arr, nil
}

func (v Value) Mapping() (*Mapping, error) {
	if v.kind != KindMapping {
		return nil, v.typeErr("mapping")
	}
	return v.mapping, nil
}

func (v Value) IndexPairSet() (*IndexPairSet, error) {
	if v.kind != KindIndexPairSet {
		return nil, v.typeErr("index_pair_set")
	}
	return v.pairSet, nil
}

func (v Value) Bytes() (*BytesBuffer, error) {
	if v.kind != KindBytesBuffer {
		return nil, v.typeErr("bytes_buffer")
	}
	return v.bytes, nil
}

// GoString renders a debug description, used by user-facing formatting hooks.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindNumber:
		return v.num.String()
	case KindBoolean:
		return fmt.Sprintf("%t", v.boolean)
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}
