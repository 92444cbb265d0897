package dimension

import (
	"fmt"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// SIMonotonic extends SI with an explicit, strictly monotone coordinate
// array and an optional reciprocal SI dimension describing its
// FFT-conjugate axis.
type SIMonotonic struct {
	SI
	coordinates []unit.Scalar
	reciprocal  *SI
}

// NewSIMonotonic creates an SIMonotonic dimension. coordinates must hold at
// least 2 entries and be strictly monotone (§4.1).
func NewSIMonotonic(quantityName string, coordinates []unit.Scalar, coordinatesOffset, originOffset, period unit.Scalar) (*SIMonotonic, error) {
	if len(coordinates) < 2 {
		return nil, &errs.ShapeError{Field: "coordinates", Want: 2, Got: len(coordinates)}
	}
	if !isStrictlyMonotone(coordinates) {
		return nil, errs.ErrNonMonotonicCoordinates
	}

	si, err := NewSI(quantityName, coordinatesOffset, originOffset, period)
	if err != nil {
		return nil, err
	}
	if err := si.validateScalars(coordinates...); err != nil {
		return nil, err
	}

	cp := make([]unit.Scalar, len(coordinates))
	copy(cp, coordinates)
	return &SIMonotonic{SI: *si, coordinates: cp}, nil
}

func isStrictlyMonotone(coords []unit.Scalar) bool {
	if len(coords) < 2 {
		return true
	}
	increasing := true
	decreasing := true
	for i := 1; i < len(coords); i++ {
		cmp, ok := coords[i].Compare(coords[i-1])
		if !ok {
			return false
		}
		if cmp <= 0 {
			increasing = false
		}
		if cmp >= 0 {
			decreasing = false
		}
	}
	return increasing || decreasing
}

func (m *SIMonotonic) Count() int   { return len(m.coordinates) }
func (m *SIMonotonic) Kind() string { return KindMonotonic }

// Coordinates returns the monotone coordinate array.
func (m *SIMonotonic) Coordinates() []unit.Scalar {
	out := make([]unit.Scalar, len(m.coordinates))
	copy(out, m.coordinates)
	return out
}

// SetCoordinates replaces the coordinate array, rejecting updates that
// break monotonicity.
func (m *SIMonotonic) SetCoordinates(coords []unit.Scalar) error {
	if len(coords) < 2 {
		return &errs.ShapeError{Field: "coordinates", Want: 2, Got: len(coords)}
	}
	if !isStrictlyMonotone(coords) {
		return errs.ErrNonMonotonicCoordinates
	}
	if err := m.validateScalars(coords...); err != nil {
		return err
	}
	cp := make([]unit.Scalar, len(coords))
	copy(cp, coords)
	m.coordinates = cp
	return nil
}

// Reciprocal returns the associated reciprocal SI dimension, if any.
func (m *SIMonotonic) Reciprocal() *SI { return m.reciprocal }

// SetReciprocal attaches a reciprocal SI dimension.
func (m *SIMonotonic) SetReciprocal(r *SI) { m.reciprocal = r }

func (m *SIMonotonic) LongCoordinateLabel(i int) string {
	label := m.label
	if label == "" {
		label = "Coordinate"
	}
	if i < 0 || i >= len(m.coordinates) {
		return fmt.Sprintf("%s-%d", label, i)
	}
	if m.coordinates[i].Unit.Symbol == "" {
		return fmt.Sprintf("%s-%d", label, i)
	}
	return fmt.Sprintf("%s-%d/%s", label, i, m.coordinates[i].Unit.Symbol)
}

func (m *SIMonotonic) ToDictionary() *value.Mapping {
	d := value.NewMapping()
	writeCommonDict(d, KindMonotonic, m.base)
	m.writeSIDict(d)
	arr := value.NewArray()
	for _, c := range m.coordinates {
		arr.Append(value.FromString(c.String()))
	}
	d.Set("coordinates", value.FromArray(arr))
	if m.reciprocal != nil {
		d.Set("reciprocal", value.FromMapping(m.reciprocal.ToDictionary()))
	}
	return d
}

// MonotonicFromDictionary reconstructs an SIMonotonic.
func MonotonicFromDictionary(d *value.Mapping) (*SIMonotonic, error) {
	coordOffset, originOffset, period, err := readSIScalars(d)
	if err != nil {
		return nil, err
	}
	qname := ""
	if v, ok := d.Get("quantity_name"); ok {
		qname, _ = v.String()
	}

	cv, ok := d.Get("coordinates")
	if !ok {
		return nil, &errs.InvalidArgumentError{Field: "coordinates", Reason: "missing"}
	}
	arr, err := cv.Array()
	if err != nil {
		return nil, &errs.TypeMismatchError{Field: "coordinates", Want: "array", Got: cv.Kind().String()}
	}
	coords := make([]unit.Scalar, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		s, err := arr.At(i).String()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "coordinates[]", Want: "string", Got: arr.At(i).Kind().String()}
		}
		sc, err := unit.ParseScalar(s)
		if err != nil {
			return nil, err
		}
		coords[i] = sc
	}

	m, err := NewSIMonotonic(qname, coords, coordOffset, originOffset, period)
	if err != nil {
		return nil, err
	}
	if v, ok := d.Get("periodic"); ok {
		m.periodic, _ = v.Bool()
	}
	if v, ok := d.Get("scaling"); ok {
		s, _ := v.String()
		m.scaling = Scaling(s)
	}
	if v, ok := d.Get("reciprocal"); ok {
		rd, err := v.Mapping()
		if err == nil {
			recip, err := SIFromDictionary(rd)
			if err == nil {
				m.reciprocal = recip
			}
		}
	}
	m.base = readCommonDict(d)
	return m, nil
}

func (m *SIMonotonic) Clone() Dimension {
	out := &SIMonotonic{SI: m.SI.cloneValue(), coordinates: make([]unit.Scalar, len(m.coordinates))}
	copy(out.coordinates, m.coordinates)
	if m.reciprocal != nil {
		r := *m.reciprocal
		out.reciprocal = &r
	}
	return out
}
