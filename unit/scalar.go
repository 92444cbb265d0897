package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/csdm-go/csdm/errs"
)

// Scalar is a (numeric value, unit) pair with arithmetic and conversion,
// the adapter for the external SI-units library's scalar type (§3).
type Scalar struct {
	Value float64
	Unit  Unit
}

// NewScalar builds a Scalar directly from a value and a parsed Unit.
func NewScalar(value float64, u Unit) Scalar { return Scalar{Value: value, Unit: u} }

// ParseScalar parses an expression like "3.0 s" or "500.0 Hz" or "1.0" into
// a Scalar.
func ParseScalar(expr string) (Scalar, error) {
	expr = strings.TrimSpace(expr)
	i := 0
	for i < len(expr) && (isNumChar(expr[i])) {
		i++
	}
	if i == 0 {
		return Scalar{}, &errs.DecodeError{Source: "scalar", Reason: "missing numeric value in " + expr}
	}
	numPart := expr[:i]
	unitPart := strings.TrimSpace(expr[i:])

	v, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return Scalar{}, &errs.DecodeError{Source: "scalar", Reason: "bad numeric literal " + numPart}
	}
	u, err := ParseUnit(unitPart)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: v, Unit: u}, nil
}

func isNumChar(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-' || b == '+' || b == 'e' || b == 'E'
}

// IsFinite reports whether the scalar's value is finite, per the
// Dimension SI setters' finiteness validation.
func (s Scalar) IsFinite() bool { return !math.IsInf(s.Value, 0) && !math.IsNaN(s.Value) }

// SameDimensionality reports whether s and o share reduced SI dimensionality.
func (s Scalar) SameDimensionality(o Scalar) bool { return s.Unit.SameDimensionality(o.Unit) }

// ConvertTo returns s expressed in target unit.
func (s Scalar) ConvertTo(target Unit) (Scalar, error) {
	factor, err := s.Unit.ConversionFactor(target)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value * factor, Unit: target}, nil
}

// Add returns s + o, converting o into s's unit first.
func (s Scalar) Add(o Scalar) (Scalar, error) {
	conv, err := o.ConvertTo(s.Unit)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value + conv.Value, Unit: s.Unit}, nil
}

// Sub returns s - o, converting o into s's unit first.
func (s Scalar) Sub(o Scalar) (Scalar, error) {
	conv, err := o.ConvertTo(s.Unit)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value - conv.Value, Unit: s.Unit}, nil
}

// MulScalar returns s scaled by a dimensionless factor k.
func (s Scalar) MulScalar(k float64) Scalar {
	return Scalar{Value: s.Value * k, Unit: s.Unit}
}

// Equal reports whether s and o represent the same physical quantity,
// converting units if necessary.
func (s Scalar) Equal(o Scalar) bool {
	conv, err := o.ConvertTo(s.Unit)
	if err != nil {
		return false
	}
	return s.Value == conv.Value
}

// Compare returns -1, 0, or 1 comparing s to o (after converting o into s's
// unit); ok is false if the units are not comparable.
func (s Scalar) Compare(o Scalar) (result int, ok bool) {
	conv, err := o.ConvertTo(s.Unit)
	if err != nil {
		return 0, false
	}
	switch {
	case s.Value < conv.Value:
		return -1, true
	case s.Value > conv.Value:
		return 1, true
	default:
		return 0, true
	}
}

// String renders the scalar as "<value> <unit>".
func (s Scalar) String() string {
	if s.Unit.Symbol == "" {
		return fmt.Sprintf("%g", s.Value)
	}
	return fmt.Sprintf("%g %s", s.Value, s.Unit.Symbol)
}
