package dimension

import (
	"fmt"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// Scaling selects the coordinate-scaling convention.
type Scaling string

const (
	ScalingNone Scaling = "none"
	ScalingNMR  Scaling = "nmr"
)

// SI is the abstract-quantitative dimension base, also directly
// instantiable as a bare (count == 1) dimension.
type SI struct {
	base
	quantityName     string
	coordinatesOffset unit.Scalar
	originOffset      unit.Scalar
	period            unit.Scalar
	periodic          bool
	scaling           Scaling
}

// NewSI creates a bare SI dimension. The three scalars must share reduced
// SI dimensionality with quantityName's expected dimensionality (or
// quantityName may be empty, inferred from coordinatesOffset's unit).
func NewSI(quantityName string, coordinatesOffset, originOffset, period unit.Scalar) (*SI, error) {
	s := &SI{
		base:              newBase(),
		quantityName:      quantityName,
		coordinatesOffset: coordinatesOffset,
		originOffset:      originOffset,
		period:            period,
		scaling:           ScalingNone,
	}
	if err := s.validateScalars(coordinatesOffset, originOffset, period); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SI) Count() int   { return 1 }
func (s *SI) Kind() string { return KindSI }

func (s *SI) QuantityName() string { return s.quantityName }

// expectedDimensionality resolves the expected reduced dimensionality for
// the current quantity_name, falling back to the first scalar's own
// dimensionality when quantity_name is empty (auto-inferred, per §3).
func (s *SI) expectedDimensionality(fallback unit.Scalar) (unit.Dimensionality, error) {
	if s.quantityName == "" {
		return fallback.Unit.Dims, nil
	}
	d, ok := unit.QuantityDimensionality(s.quantityName)
	if !ok {
		return unit.Dimensionality{}, &errs.DecodeError{Source: "quantity_name", Reason: fmt.Sprintf("unknown quantity_name %q", s.quantityName)}
	}
	return d, nil
}

// isUnsetScalar reports whether sc is the zero Scalar (no unit ever
// assigned, e.g. an absent period), distinguishing it from a genuine
// dimensionless unit such as ParseUnit("")'s Factor-1 result.
func isUnsetScalar(sc unit.Scalar) bool {
	return sc.Value == 0 && sc.Unit == (unit.Unit{})
}

func (s *SI) validateScalars(scalars ...unit.Scalar) error {
	set := scalars[:0:0]
	for _, sc := range scalars {
		if !isUnsetScalar(sc) {
			set = append(set, sc)
		}
	}
	if len(set) == 0 {
		return nil
	}
	expected, err := s.expectedDimensionality(set[0])
	if err != nil {
		return err
	}
	for _, sc := range set {
		if !sc.IsFinite() {
			return errs.ErrNonFiniteScalar
		}
		if sc.Unit.Dims != expected {
			return errs.ErrDimensionalityMismatch
		}
	}
	return nil
}

// SetQuantityName validates that name maps to a known quantity before
// committing (§4.1's SI setters).
func (s *SI) SetQuantityName(name string) error {
	if name == "" {
		s.quantityName = name
		return nil
	}
	if _, ok := unit.QuantityDimensionality(name); !ok {
		return &errs.DecodeError{Source: "quantity_name", Reason: fmt.Sprintf("unknown quantity_name %q", name)}
	}
	old := s.quantityName
	s.quantityName = name
	if err := s.validateScalars(s.coordinatesOffset, s.originOffset, s.period); err != nil {
		s.quantityName = old
		return err
	}
	return nil
}

func (s *SI) CoordinatesOffset() unit.Scalar { return s.coordinatesOffset }
func (s *SI) OriginOffset() unit.Scalar      { return s.originOffset }
func (s *SI) Period() unit.Scalar            { return s.period }
func (s *SI) Periodic() bool                 { return s.periodic }
func (s *SI) SetPeriodic(p bool)             { s.periodic = p }
func (s *SI) Scaling() Scaling               { return s.scaling }

// SetScaling sets the coordinate-scaling convention.
func (s *SI) SetScaling(sc Scaling) error {
	if sc != ScalingNone && sc != ScalingNMR {
		return &errs.InvalidArgumentError{Field: "scaling", Reason: "must be \"none\" or \"nmr\""}
	}
	s.scaling = sc
	return nil
}

func (s *SI) SetCoordinatesOffset(v unit.Scalar) error {
	if err := s.validateScalars(v, s.originOffset, s.period); err != nil {
		return err
	}
	s.coordinatesOffset = v
	return nil
}

func (s *SI) SetOriginOffset(v unit.Scalar) error {
	if err := s.validateScalars(s.coordinatesOffset, v, s.period); err != nil {
		return err
	}
	s.originOffset = v
	return nil
}

func (s *SI) SetPeriod(v unit.Scalar) error {
	if err := s.validateScalars(s.coordinatesOffset, s.originOffset, v); err != nil {
		return err
	}
	s.period = v
	return nil
}

func (s *SI) LongCoordinateLabel(i int) string {
	label := s.label
	if label == "" {
		label = "Coordinate"
	}
	if s.quantityName == "" {
		return fmt.Sprintf("%s-%d", label, i)
	}
	return fmt.Sprintf("%s-%d/%s", label, i, s.coordinatesOffset.Unit.Symbol)
}

func (s *SI) writeSIDict(d *value.Mapping) {
	if s.quantityName != "" {
		d.Set("quantity_name", value.FromString(s.quantityName))
	}
	d.Set("coordinates_offset", value.FromString(s.coordinatesOffset.String()))
	d.Set("origin_offset", value.FromString(s.originOffset.String()))
	d.Set("period", value.FromString(s.period.String()))
	d.Set("periodic", value.FromBool(s.periodic))
	if s.scaling != "" && s.scaling != ScalingNone {
		d.Set("scaling", value.FromString(string(s.scaling)))
	}
}

func (s *SI) ToDictionary() *value.Mapping {
	d := value.NewMapping()
	writeCommonDict(d, KindSI, s.base)
	s.writeSIDict(d)
	return d
}

func readSIScalars(d *value.Mapping) (coordOffset, originOffset, period unit.Scalar, err error) {
	coordOffset, err = readScalarField(d, "coordinates_offset")
	if err != nil {
		return
	}
	originOffset, err = readScalarField(d, "origin_offset")
	if err != nil {
		return
	}
	period, err = readScalarField(d, "period")
	return
}

func readScalarField(d *value.Mapping, field string) (unit.Scalar, error) {
	v, ok := d.Get(field)
	if !ok {
		return unit.Scalar{}, nil
	}
	s, err := v.String()
	if err != nil {
		return unit.Scalar{}, &errs.TypeMismatchError{Field: field, Want: "string", Got: v.Kind().String()}
	}
	sc, err := unit.ParseScalar(s)
	if err != nil {
		return unit.Scalar{}, err
	}
	return sc, nil
}

// SIFromDictionary reconstructs a bare SI dimension.
func SIFromDictionary(d *value.Mapping) (*SI, error) {
	coordOffset, originOffset, period, err := readSIScalars(d)
	if err != nil {
		return nil, err
	}
	qname := ""
	if v, ok := d.Get("quantity_name"); ok {
		qname, _ = v.String()
	}
	s, err := NewSI(qname, coordOffset, originOffset, period)
	if err != nil {
		return nil, err
	}
	if v, ok := d.Get("periodic"); ok {
		s.periodic, _ = v.Bool()
	}
	s.scaling = ScalingNone
	if v, ok := d.Get("scaling"); ok {
		str, _ := v.String()
		s.scaling = Scaling(str)
	}
	s.base = readCommonDict(d)
	return s, nil
}

func (s *SI) Clone() Dimension {
	out := *s
	out.base = s.cloneBase()
	return &out
}

// cloneValue is used by SIMonotonic/SILinear to copy the embedded SI state
// without exporting a Dimension-interface Clone from the embedded type.
func (s *SI) cloneValue() SI {
	out := *s
	out.base = s.cloneBase()
	return out
}
