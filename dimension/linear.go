package dimension

import (
	"fmt"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// SILinear extends SI with an evenly spaced coordinate grid described by
// count and increment, and an optional complex_fft flag marking the axis
// as the frequency-domain side of a Fourier-conjugate pair.
type SILinear struct {
	SI
	count       int
	increment   unit.Scalar
	complexFFT  bool
	reciprocal  *SI
}

// NewSILinear creates an SILinear dimension. count must be >= 2.
func NewSILinear(quantityName string, count int, increment, coordinatesOffset, originOffset, period unit.Scalar) (*SILinear, error) {
	if count < 2 {
		return nil, &errs.ShapeError{Field: "count", Want: 2, Got: count}
	}
	si, err := NewSI(quantityName, coordinatesOffset, originOffset, period)
	if err != nil {
		return nil, err
	}
	if err := si.validateScalars(increment); err != nil {
		return nil, err
	}
	return &SILinear{SI: *si, count: count, increment: increment}, nil
}

func (l *SILinear) Count() int   { return l.count }
func (l *SILinear) Kind() string { return KindLinear }

func (l *SILinear) Increment() unit.Scalar { return l.increment }
func (l *SILinear) ComplexFFT() bool       { return l.complexFFT }
func (l *SILinear) SetComplexFFT(b bool)   { l.complexFFT = b }

// SetCount updates the grid length; the reciprocal increment (derived, see
// ReciprocalIncrement) changes implicitly since it is recomputed on demand.
func (l *SILinear) SetCount(n int) error {
	if n < 2 {
		return &errs.ShapeError{Field: "count", Want: 2, Got: n}
	}
	l.count = n
	return nil
}

// SetIncrement validates dimensionality against the existing offsets before
// committing.
func (l *SILinear) SetIncrement(v unit.Scalar) error {
	if err := l.validateScalars(v); err != nil {
		return err
	}
	l.increment = v
	return nil
}

// CoordinateAt returns the i-th coordinate: origin_offset + coordinates_offset
// + i*increment, wrapping into [0, period) when periodic is set (§4.1).
func (l *SILinear) CoordinateAt(i int) (unit.Scalar, error) {
	step := l.increment.MulScalar(float64(i))
	origin, err := l.originOffset.Add(l.coordinatesOffset)
	if err != nil {
		return unit.Scalar{}, err
	}
	sum, err := origin.Add(step)
	if err != nil {
		return unit.Scalar{}, err
	}
	if l.periodic && l.period.Value != 0 {
		sum = wrapPeriodic(sum, l.period)
	}
	return sum, nil
}

func wrapPeriodic(c, period unit.Scalar) unit.Scalar {
	factor, err := period.Unit.ConversionFactor(c.Unit)
	if err != nil {
		return c
	}
	periodInCUnits := period.Value * factor
	if periodInCUnits == 0 {
		return c
	}
	v := c.Value
	for v >= periodInCUnits {
		v -= periodInCUnits
	}
	for v < 0 {
		v += periodInCUnits
	}
	return unit.NewScalar(v, c.Unit)
}

// ReciprocalIncrement derives the FFT-conjugate axis increment,
// 1/(count*increment), recomputed from the current count/increment rather
// than cached (§4.1).
func (l *SILinear) ReciprocalIncrement() unit.Scalar {
	denom := l.increment.Value * float64(l.count)
	if denom == 0 {
		return unit.NewScalar(0, l.increment.Unit)
	}
	recipDims := l.increment.Unit.Dims.Neg()
	recipUnit := unit.Unit{Symbol: "(" + l.increment.Unit.Symbol + ")^-1", Factor: 1 / l.increment.Unit.Factor, Dims: recipDims}
	return unit.NewScalar(1/denom, recipUnit)
}

func (l *SILinear) Reciprocal() *SI   { return l.reciprocal }
func (l *SILinear) SetReciprocal(r *SI) { l.reciprocal = r }

func (l *SILinear) LongCoordinateLabel(i int) string {
	label := l.label
	if label == "" {
		label = "Coordinate"
	}
	if l.coordinatesOffset.Unit.Symbol == "" && l.increment.Unit.Symbol == "" {
		return fmt.Sprintf("%s-%d", label, i)
	}
	sym := l.increment.Unit.Symbol
	if sym == "" {
		sym = l.coordinatesOffset.Unit.Symbol
	}
	return fmt.Sprintf("%s-%d/%s", label, i, sym)
}

func (l *SILinear) ToDictionary() *value.Mapping {
	d := value.NewMapping()
	writeCommonDict(d, KindLinear, l.base)
	l.writeSIDict(d)
	d.Set("count", value.FromNumber(value.Int(int64(l.count))))
	d.Set("increment", value.FromString(l.increment.String()))
	if l.complexFFT {
		d.Set("complex_fft", value.FromBool(l.complexFFT))
	}
	if l.reciprocal != nil {
		d.Set("reciprocal", value.FromMapping(l.reciprocal.ToDictionary()))
	}
	return d
}

// LinearFromDictionary reconstructs an SILinear.
func LinearFromDictionary(d *value.Mapping) (*SILinear, error) {
	coordOffset, originOffset, period, err := readSIScalars(d)
	if err != nil {
		return nil, err
	}
	qname := ""
	if v, ok := d.Get("quantity_name"); ok {
		qname, _ = v.String()
	}

	cv, ok := d.Get("count")
	if !ok {
		return nil, &errs.InvalidArgumentError{Field: "count", Reason: "missing"}
	}
	n, err := cv.Number()
	if err != nil {
		return nil, &errs.TypeMismatchError{Field: "count", Want: "number", Got: cv.Kind().String()}
	}

	increment, err := readScalarField(d, "increment")
	if err != nil {
		return nil, err
	}

	l, err := NewSILinear(qname, int(n.Int64()), increment, coordOffset, originOffset, period)
	if err != nil {
		return nil, err
	}
	if v, ok := d.Get("periodic"); ok {
		l.periodic, _ = v.Bool()
	}
	if v, ok := d.Get("scaling"); ok {
		s, _ := v.String()
		l.scaling = Scaling(s)
	}
	if v, ok := d.Get("complex_fft"); ok {
		l.complexFFT, _ = v.Bool()
	}
	if v, ok := d.Get("reciprocal"); ok {
		rd, err := v.Mapping()
		if err == nil {
			recip, err := SIFromDictionary(rd)
			if err == nil {
				l.reciprocal = recip
			}
		}
	}
	l.base = readCommonDict(d)
	return l, nil
}

func (l *SILinear) Clone() Dimension {
	out := &SILinear{SI: l.SI.cloneValue(), count: l.count, increment: l.increment, complexFFT: l.complexFFT}
	if l.reciprocal != nil {
		r := *l.reciprocal
		out.reciprocal = &r
	}
	return out
}

// FromDictionary dispatches to the concrete variant constructor keyed on
// the "type" discriminator (§6.1).
func FromDictionary(d *value.Mapping) (Dimension, error) {
	tv, ok := d.Get("type")
	if !ok {
		return nil, &errs.InvalidArgumentError{Field: "type", Reason: "missing"}
	}
	kind, err := tv.String()
	if err != nil {
		return nil, &errs.TypeMismatchError{Field: "type", Want: "string", Got: tv.Kind().String()}
	}
	switch kind {
	case KindLabeled:
		return LabeledFromDictionary(d)
	case KindSI:
		return SIFromDictionary(d)
	case KindMonotonic:
		return MonotonicFromDictionary(d)
	case KindLinear:
		return LinearFromDictionary(d)
	default:
		return nil, &errs.DecodeError{Source: "type", Reason: fmt.Sprintf("unknown dimension type %q", kind)}
	}
}
