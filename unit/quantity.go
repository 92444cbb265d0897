package unit

import "strings"

// quantityDims maps a quantity_name to its expected reduced dimensionality.
// This is the narrow slice of the external units library's "quantity-name
// -> dimensionality lookup" (§3) that the dimension hierarchy needs to
// validate SILinear/SIMonotonic/SI scalars against.
var quantityDims = map[string]Dimensionality{
	"dimensionless":          Dimensionless,
	"time":                   dimVec(0, 0, 1, 0, 0, 0, 0),
	"frequency":              dimVec(0, 0, -1, 0, 0, 0, 0),
	"length":                 dimVec(1, 0, 0, 0, 0, 0, 0),
	"mass":                   dimVec(0, 1, 0, 0, 0, 0, 0),
	"electric current":       dimVec(0, 0, 0, 1, 0, 0, 0),
	"temperature":            dimVec(0, 0, 0, 0, 1, 0, 0),
	"amount of substance":    dimVec(0, 0, 0, 0, 0, 1, 0),
	"luminous intensity":     dimVec(0, 0, 0, 0, 0, 0, 1),
	"electric potential":     dimVec(2, 1, -3, -1, 0, 0, 0),
	"magnetic flux density":  dimVec(0, 1, -2, -1, 0, 0, 0),
	"chemical shift":         Dimensionless,
	"mass to charge ratio":   familyDim(1),
	"wavenumber":             dimVec(-1, 0, 0, 0, 0, 0, 0),
}

// QuantityDimensionality resolves a quantity_name to its expected
// Dimensionality. An empty name is not a known quantity and returns false;
// callers that want "infer from unit" semantics (§3's
// "quantity_name is empty/auto-inferred from the unit") should check name
// == "" separately and skip this lookup.
func QuantityDimensionality(name string) (Dimensionality, bool) {
	d, ok := quantityDims[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// KnownQuantityNames lists every recognized quantity_name, for validation
// error messages.
func KnownQuantityNames() []string {
	out := make([]string, 0, len(quantityDims))
	for k := range quantityDims {
		out = append(out, k)
	}
	return out
}
