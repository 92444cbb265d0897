package unit

type baseUnit struct {
	toSI  float64 // multiplicative factor to the coherent SI unit
	dims  Dimensionality
}

var prefixes = map[string]float64{
	"Y": 1e24, "Z": 1e21, "E": 1e18, "P": 1e15, "T": 1e12, "G": 1e9,
	"M": 1e6, "k": 1e3, "h": 1e2, "da": 1e1,
	"d": 1e-1, "c": 1e-2, "m": 1e-3, "u": 1e-6, "µ": 1e-6,
	"n": 1e-9, "p": 1e-12, "f": 1e-15, "a": 1e-18,
}

// baseSymbols maps an un-prefixed symbol to its coherent-SI factor and
// dimensionality. Prefixable entries are combined with the prefixes table
// in lookupSymbol; a handful of named non-SI units (ppm, Gauss, m/z, Da)
// used by the JCAMP/Tecmag importers are listed directly with their own
// fixed factor and a dimensionality chosen to keep conversions within their
// own family consistent.
var baseSymbols = map[string]baseUnit{
	"1":   {1, Dimensionless},
	"":    {1, Dimensionless},
	"s":   {1, dimVec(0, 0, 1, 0, 0, 0, 0)},
	"Hz":  {1, dimVec(0, 0, -1, 0, 0, 0, 0)},
	"m":   {1, dimVec(1, 0, 0, 0, 0, 0, 0)},
	"g":   {1e-3, dimVec(0, 1, 0, 0, 0, 0, 0)},
	"A":   {1, dimVec(0, 0, 0, 1, 0, 0, 0)},
	"K":   {1, dimVec(0, 0, 0, 0, 1, 0, 0)},
	"mol": {1, dimVec(0, 0, 0, 0, 0, 1, 0)},
	"cd":  {1, dimVec(0, 0, 0, 0, 0, 0, 1)},
	"V":   {1, dimVec(2, 1, -3, -1, 0, 0, 0)},
	"T":   {1, dimVec(0, 1, -2, -1, 0, 0, 0)}, // tesla, magnetic flux density
	"G":   {1e-4, dimVec(0, 1, -2, -1, 0, 0, 0)}, // gauss = 1e-4 T

	// Named, non-prefixable units used by the importers. ppm is plain
	// dimensionless; m/z and Da share the familyDim(1) slot, so they
	// convert to each other and are rejected against length/time/etc.
	"ppm": {1, dimVec(0, 0, 0, 0, 0, 0, 0)}, // dimensionless shift scale
	"m/z": {1, familyDim(1)},
	"Da":  {1, familyDim(1)},
}

// prefixable lists which base symbols accept an SI prefix (so "cm", "ms",
// "kHz", "MHz" resolve correctly).
var prefixable = map[string]bool{
	"s": true, "Hz": true, "m": true, "g": true, "A": true, "K": true,
	"mol": true, "cd": true, "V": true, "T": true,
}

func dimVec(l, m, t, i, theta, n, j int8) Dimensionality {
	return Dimensionality{l, m, t, i, theta, n, j}
}

// familyDim synthesizes a dimensionality vector in an otherwise-unused high
// component so named non-SI units compare equal only within their own
// family. Index 6 (luminosity) is repurposed here since m/z and similar
// quantities never interact with true luminous intensity in this module.
func familyDim(tag int8) Dimensionality {
	var d Dimensionality
	d[dimLuminosity] = tag
	return d
}

func lookupSymbol(sym string) (baseUnit, bool) {
	if u, ok := baseSymbols[sym]; ok {
		return u, true
	}
	for p, factor := range prefixes {
		if len(sym) > len(p) && sym[:len(p)] == p {
			base := sym[len(p):]
			if !prefixable[base] {
				continue
			}
			if u, ok := baseSymbols[base]; ok {
				return baseUnit{toSI: u.toSI * factor, dims: u.dims}, true
			}
		}
	}
	return baseUnit{}, false
}
