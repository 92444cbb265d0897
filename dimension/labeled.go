package dimension

import (
	"fmt"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/value"
)

// Labeled is a categorical dimension: a fixed array of string labels, one
// per grid point along this axis.
type Labeled struct {
	base
	coordinateLabels []string
}

// NewLabeled creates a Labeled dimension. labels must hold at least 2
// entries (§3 minimum size 2).
func NewLabeled(labels []string) (*Labeled, error) {
	if len(labels) < 2 {
		return nil, errs.ErrEmptyCoordinateLabels
	}
	cp := make([]string, len(labels))
	copy(cp, labels)
	return &Labeled{base: newBase(), coordinateLabels: cp}, nil
}

func (l *Labeled) Count() int   { return len(l.coordinateLabels) }
func (l *Labeled) Kind() string { return KindLabeled }

// CoordinateLabels returns the labels.
func (l *Labeled) CoordinateLabels() []string {
	out := make([]string, len(l.coordinateLabels))
	copy(out, l.coordinateLabels)
	return out
}

// SetCoordinateLabels replaces the labels; it is rejected when the new
// array has fewer than 2 entries.
func (l *Labeled) SetCoordinateLabels(labels []string) error {
	if len(labels) < 2 {
		return errs.ErrEmptyCoordinateLabels
	}
	cp := make([]string, len(labels))
	copy(cp, labels)
	l.coordinateLabels = cp
	return nil
}

// SetLabelAt sets the label at index i, bounds-checked.
func (l *Labeled) SetLabelAt(i int, label string) error {
	if i < 0 || i >= len(l.coordinateLabels) {
		return &errs.InvalidArgumentError{Field: "index", Reason: "out of range"}
	}
	l.coordinateLabels[i] = label
	return nil
}

func (l *Labeled) LongCoordinateLabel(i int) string {
	if i < 0 || i >= len(l.coordinateLabels) {
		return ""
	}
	if l.label != "" {
		return fmt.Sprintf("%s-%d", l.label, i)
	}
	return l.coordinateLabels[i]
}

func (l *Labeled) ToDictionary() *value.Mapping {
	d := value.NewMapping()
	writeCommonDict(d, KindLabeled, l.base)
	arr := value.NewArray()
	for _, s := range l.coordinateLabels {
		arr.Append(value.FromString(s))
	}
	d.Set("coordinate_labels", value.FromArray(arr))
	return d
}

// LabeledFromDictionary reconstructs a Labeled from its to_dictionary form.
func LabeledFromDictionary(d *value.Mapping) (*Labeled, error) {
	v, ok := d.Get("coordinate_labels")
	if !ok {
		return nil, &errs.InvalidArgumentError{Field: "coordinate_labels", Reason: "missing"}
	}
	arr, err := v.Array()
	if err != nil {
		return nil, &errs.TypeMismatchError{Field: "coordinate_labels", Want: "array", Got: v.Kind().String()}
	}
	labels := make([]string, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		s, err := arr.At(i).String()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "coordinate_labels[]", Want: "string", Got: arr.At(i).Kind().String()}
		}
		labels[i] = s
	}
	l, err := NewLabeled(labels)
	if err != nil {
		return nil, err
	}
	l.base = readCommonDict(d)
	return l, nil
}

func (l *Labeled) Clone() Dimension {
	out := &Labeled{base: l.cloneBase(), coordinateLabels: make([]string, len(l.coordinateLabels))}
	copy(out.coordinateLabels, l.coordinateLabels)
	return out
}
