package unit

import (
	"strconv"
	"strings"

	"github.com/csdm-go/csdm/errs"
)

// Unit is a parsed unit expression: a multiplicative factor to the coherent
// SI unit, its symbolic string (as parsed, for round-tripping), and its
// reduced Dimensionality.
type Unit struct {
	Symbol string
	Factor float64
	Dims   Dimensionality
}

// ParseUnit parses a unit expression such as "s", "1/cm", "kHz", "m^2",
// "cm/s", or "" (dimensionless).
func ParseUnit(expr string) (Unit, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Unit{Symbol: "", Factor: 1, Dims: Dimensionless}, nil
	}

	parts := strings.SplitN(expr, "/", 2)
	num, err := parseProduct(parts[0])
	if err != nil {
		return Unit{}, err
	}
	if len(parts) == 1 {
		num.Symbol = expr
		return num, nil
	}

	den, err := parseProduct(parts[1])
	if err != nil {
		return Unit{}, err
	}
	out := Unit{
		Symbol: expr,
		Factor: num.Factor / den.Factor,
		Dims:   num.Dims.sub(den.Dims),
	}
	return out, nil
}

func parseProduct(s string) (Unit, error) {
	factors := strings.Split(s, "*")
	result := Unit{Factor: 1, Dims: Dimensionless}
	for _, f := range factors {
		f = strings.TrimSpace(f)
		u, err := parseFactor(f)
		if err != nil {
			return Unit{}, err
		}
		result.Factor *= u.Factor
		result.Dims = result.Dims.add(u.Dims)
	}
	return result, nil
}

func parseFactor(f string) (Unit, error) {
	if f == "1" || f == "" {
		return Unit{Factor: 1, Dims: Dimensionless}, nil
	}

	sym, exp := f, 1
	if i := strings.Index(f, "^"); i >= 0 {
		sym = f[:i]
		n, err := strconv.Atoi(f[i+1:])
		if err != nil {
			return Unit{}, &errs.DecodeError{Source: "unit", Reason: "bad exponent in " + f}
		}
		exp = n
	}

	base, ok := lookupSymbol(sym)
	if !ok {
		return Unit{}, &errs.DecodeError{Source: "unit", Reason: "unrecognized unit symbol " + sym}
	}

	out := Unit{Factor: 1, Dims: Dimensionless}
	factor := base.toSI
	dims := base.dims
	if exp < 0 {
		n := -exp
		for i := 0; i < n; i++ {
			out.Factor /= factor
			out.Dims = out.Dims.sub(dims)
		}
		return out, nil
	}
	for i := 0; i < exp; i++ {
		out.Factor *= factor
		out.Dims = out.Dims.add(dims)
	}
	return out, nil
}

// SameDimensionality reports whether u and o share reduced SI dimensionality.
func (u Unit) SameDimensionality(o Unit) bool { return u.Dims == o.Dims }

// ConversionFactor returns the multiplicative factor to convert a value
// expressed in u into a value expressed in target; both must share reduced
// dimensionality.
func (u Unit) ConversionFactor(target Unit) (float64, error) {
	if !u.SameDimensionality(target) {
		return 0, errs.ErrDimensionalityMismatch
	}
	return u.Factor / target.Factor, nil
}
