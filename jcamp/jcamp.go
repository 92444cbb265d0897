// Package jcamp implements the JCAMP-DX text importer (§6.2): it splits a
// JCAMP-DX document into its "##LABEL=" records, unfolds the SQZ/DIF/DUP
// run-length digit encodings used by XYDATA blocks, and builds a Dataset
// with one SILinear (XYDATA) or SIMonotonic (PEAK TABLE) dimension and one
// scalar DependentVariable.
package jcamp

import (
	"strconv"
	"strings"

	"github.com/csdm-go/csdm/dataset"
	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/dimension"
	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// record is one "##LABEL=value" entry; value may span multiple lines (the
// data block for XYDATA/PEAK TABLE records).
type record struct {
	label string
	value string
}

// splitRecords breaks a JCAMP-DX document into its ##-delimited records.
func splitRecords(text string) []record {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var out []record
	var cur *record
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "##") {
			if cur != nil {
				out = append(out, *cur)
			}
			rest := strings.TrimPrefix(strings.TrimSpace(line), "##")
			parts := strings.SplitN(rest, "=", 2)
			label := normalizeLabel(parts[0])
			val := ""
			if len(parts) == 2 {
				val = parts[1]
			}
			cur = &record{label: label, value: val}
			continue
		}
		if cur != nil {
			cur.value += "\n" + line
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

func normalizeLabel(l string) string {
	l = strings.TrimSpace(l)
	l = strings.ToUpper(l)
	l = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == ' ' || r == '/' {
			return -1
		}
		return r
	}, l)
	return l
}

func findRecord(records []record, label string) (record, bool) {
	for _, r := range records {
		if r.label == label {
			return r, true
		}
	}
	return record{}, false
}

// xunitsToSI maps the known JCAMP XUNITS tokens to an SI unit symbol and
// quantity name (§6.2).
var xunitsToSI = map[string]struct {
	unit     string
	quantity string
}{
	"1/CM":       {"cm^-1", "wavenumber"},
	"VOLUME":     {"", "dimensionless"},
	"M/Z":        {"", "dimensionless"},
	"NANOMETERS": {"nm", "length"},
	"GAUSS":      {"G", "magnetic flux density"},
	"HZ":         {"Hz", "frequency"},
	"TIME":       {"s", "time"},
	"SECONDS":    {"s", "time"},
}

func resolveXUnits(token string) (u unit.Unit, quantity string) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if m, ok := xunitsToSI[token]; ok {
		parsed, err := unit.ParseUnit(m.unit)
		if err != nil {
			parsed = unit.Unit{}
		}
		return parsed, m.quantity
	}
	return unit.Unit{}, "dimensionless"
}

// sqzMap and difMap implement the single-character pseudo-digit encodings
// JCAMP-DX's SQZ and DIF line formats use for leading digits.
var sqzMap = map[byte]string{
	'@': "0", 'A': "1", 'B': "2", 'C': "3", 'D': "4", 'E': "5", 'F': "6", 'G': "7", 'H': "8", 'I': "9",
	'a': "-1", 'b': "-2", 'c': "-3", 'd': "-4", 'e': "-5", 'f': "-6", 'g': "-7", 'h': "-8", 'i': "-9",
}

var difMap = map[byte]string{
	'%': "0", 'J': "1", 'K': "2", 'L': "3", 'M': "4", 'N': "5", 'O': "6", 'P': "7", 'Q': "8", 'R': "9",
	'j': "-1", 'k': "-2", 'l': "-3", 'm': "-4", 'n': "-5", 'o': "-6", 'p': "-7", 'q': "-8", 'r': "-9",
}

var dupMap = map[byte]int{
	'S': 1, 'T': 2, 'U': 3, 'V': 4, 'W': 5, 'X': 6, 'Y': 7, 'Z': 8, 's': 9,
}

// expandLine rewrites a raw XYDATA line's SQZ/DIF pseudo-digits into plain
// signed decimal tokens separated by spaces, mirroring the reference
// importer's single-pass character rewrite.
func expandLine(line string) (expanded string, hasDif bool) {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '+':
			b.WriteByte(' ')
		case c == '-':
			b.WriteString(" -")
		case sqzMap[c] != "":
			b.WriteByte(' ')
			b.WriteString(sqzMap[c])
		case difMap[c] != "":
			b.WriteByte(' ')
			b.WriteString(difMap[c])
			hasDif = true
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), hasDif
}

// decodeXYDataLine parses one expanded XYDATA line into its numeric
// tokens, applying DUP-run expansion and DIF delta-accumulation relative
// to prior points in the same decode pass.
func decodeXYDataLine(raw string, dif bool, data []float64, i int) int {
	expanded, lineHasDif := expandLine(raw)
	dif = dif || lineHasDif
	fields := strings.Fields(expanded)
	for tokenIndex, token := range fields {
		if tokenIndex == 0 || i >= len(data) {
			continue // first token on the line is the X value; skipped
		}
		dup := 0
		var cleaned strings.Builder
		for k := 0; k < len(token); k++ {
			if n, ok := dupMap[token[k]]; ok {
				dup = n
				continue
			}
			cleaned.WriteByte(token[k])
		}
		v, err := strconv.ParseFloat(cleaned.String(), 64)
		if err != nil {
			continue
		}
		if dif && tokenIndex > 1 && i > 0 {
			v += data[i-1]
		}
		data[i] = v
		for k := 0; k < dup && i+k+1 < len(data); k++ {
			data[i+k+1] = data[i]
		}
		i += dup + 1
	}
	return i
}

// Import parses a JCAMP-DX document into a Dataset carrying one scalar
// DependentVariable over a single dimension (§6.2).
func Import(text string) (*dataset.Dataset, error) {
	records := splitRecords(text)
	if _, ok := findRecord(records, "PEAKTABLE"); ok {
		return importPeakTable(records)
	}
	return importXYData(records)
}

func importXYData(records []record) (*dataset.Dataset, error) {
	xyData, ok := findRecord(records, "XYDATA")
	if !ok {
		return nil, &errs.DecodeError{Source: "jcamp", Reason: "missing ##XYDATA record"}
	}

	nptsRec, ok := findRecord(records, "NPOINTS")
	if !ok {
		return nil, &errs.DecodeError{Source: "jcamp", Reason: "missing ##NPOINTS record"}
	}
	npoints, err := strconv.Atoi(strings.TrimSpace(nptsRec.value))
	if err != nil || npoints < 2 {
		return nil, &errs.DecodeError{Source: "jcamp", Reason: "invalid NPOINTS"}
	}

	firstX, err := recordFloat(records, "FIRSTX")
	if err != nil {
		return nil, err
	}
	lastX, err := recordFloat(records, "LASTX")
	if err != nil {
		return nil, err
	}
	yFactor := 1.0
	if r, ok := findRecord(records, "YFACTOR"); ok {
		yFactor, _ = strconv.ParseFloat(strings.TrimSpace(r.value), 64)
		if yFactor == 0 {
			yFactor = 1.0
		}
	}

	xUnit, xQuantity := unit.Unit{}, "dimensionless"
	if r, ok := findRecord(records, "XUNITS"); ok {
		xUnit, xQuantity = resolveXUnits(r.value)
	}

	data := make([]float64, npoints)
	i := 0
	dif := false
	lines := strings.Split(xyData.value, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		i = decodeXYDataLine(line, dif, data, i)
	}
	for idx := range data {
		data[idx] *= yFactor
	}

	increment := (lastX - firstX) / float64(npoints-1)
	lin, err := dimension.NewSILinear(xQuantity, npoints, unit.NewScalar(increment, xUnit), unit.NewScalar(0, xUnit), unit.NewScalar(firstX, xUnit), unit.Scalar{})
	if err != nil {
		return nil, err
	}

	return buildDataset(lin, data)
}

func importPeakTable(records []record) (*dataset.Dataset, error) {
	pt, _ := findRecord(records, "PEAKTABLE")
	xUnit, xQuantity := unit.Unit{}, "dimensionless"
	if r, ok := findRecord(records, "XUNITS"); ok {
		xUnit, xQuantity = resolveXUnits(r.value)
	}

	var xs []unit.Scalar
	var ys []float64
	for _, line := range strings.Split(pt.value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, pair := range strings.Split(line, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			fields := strings.FieldsFunc(pair, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
			if len(fields) < 2 {
				continue
			}
			x, errX := strconv.ParseFloat(fields[0], 64)
			y, errY := strconv.ParseFloat(fields[1], 64)
			if errX != nil || errY != nil {
				continue
			}
			xs = append(xs, unit.NewScalar(x, xUnit))
			ys = append(ys, y)
		}
	}
	if len(xs) < 2 {
		return nil, &errs.DecodeError{Source: "jcamp", Reason: "PEAK TABLE has fewer than 2 points"}
	}

	mono, err := dimension.NewSIMonotonic(xQuantity, xs, unit.NewScalar(0, xUnit), unit.NewScalar(0, xUnit), unit.Scalar{})
	if err != nil {
		return nil, err
	}
	return buildDataset(mono, ys)
}

func buildDataset(dim dimension.Dimension, data []float64) (*dataset.Dataset, error) {
	buf := make([]byte, len(data)*8)
	f64 := numeric.ViewF64(buf)
	copy(f64, data)

	dv, err := dependentvariable.New(dependentvariable.Params{
		Kind:               dependentvariable.KindInternal,
		Name:               "intensity",
		QuantityType:       "scalar",
		ElementType:        numeric.F64,
		Encoding:           dependentvariable.EncodingNone,
		ComponentsSupplied: []*value.BytesBuffer{value.NewBytesBuffer(buf, false)},
	})
	if err != nil {
		return nil, err
	}
	return dataset.New([]dimension.Dimension{dim}, []*dependentvariable.DependentVariable{dv}, nil)
}

func recordFloat(records []record, label string) (float64, error) {
	r, ok := findRecord(records, label)
	if !ok {
		return 0, &errs.DecodeError{Source: "jcamp", Reason: "missing ##" + label + " record"}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(r.value), 64)
	if err != nil {
		return 0, &errs.DecodeError{Source: "jcamp", Reason: "invalid " + label}
	}
	return v, nil
}
