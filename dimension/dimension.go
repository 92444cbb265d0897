// Package dimension implements the CSDM Dimension variant hierarchy:
// Labeled, SI (quantitative base, also instantiable bare), SIMonotonic, and
// SILinear, with reciprocal linkage and SI-unit dimensionality invariants.
//
// The four variants share a common base (label/description/metadata) the
// way github.com/arloliu/mebo/blob's blobBase is embedded by every concrete
// blob type; each concrete struct embeds base and adds its own geometry.
package dimension

import "github.com/csdm-go/csdm/value"

// Kind discriminator wire strings, per §6.1's "type" field.
const (
	KindLabeled   = "labeled"
	KindSI        = "si_dimension"
	KindMonotonic = "monotonic"
	KindLinear    = "linear"
)

// Dimension is the polymorphic contract every variant satisfies (§4.1).
type Dimension interface {
	Count() int
	Kind() string

	Label() string
	SetLabel(string)
	Description() string
	SetDescription(string)
	Metadata() *value.Mapping
	SetMetadata(*value.Mapping)

	// LongCoordinateLabel produces a human label like "Time-3/s" or
	// "Phase-3" for the coordinate at index i.
	LongCoordinateLabel(i int) string

	ToDictionary() *value.Mapping

	// Clone returns a deep-enough copy suitable for shared (reference
	// counted, in Go's case just plain ownership) attachment to a Dataset.
	Clone() Dimension
}

// base holds the fields every variant shares.
type base struct {
	label       string
	description string
	metadata    *value.Mapping
}

func newBase() base {
	return base{metadata: value.NewMapping()}
}

func (b *base) Label() string             { return b.label }
func (b *base) SetLabel(l string)         { b.label = l }
func (b *base) Description() string       { return b.description }
func (b *base) SetDescription(d string)   { b.description = d }
func (b *base) Metadata() *value.Mapping  { return b.metadata }
func (b *base) SetMetadata(m *value.Mapping) {
	if m == nil {
		m = value.NewMapping()
	}
	b.metadata = m
}

func (b base) cloneBase() base {
	return base{label: b.label, description: b.description, metadata: b.metadata.Clone()}
}

func writeCommonDict(d *value.Mapping, kind string, b base) {
	d.Set("type", value.FromString(kind))
	if b.label != "" {
		d.Set("label", value.FromString(b.label))
	}
	if b.description != "" {
		d.Set("description", value.FromString(b.description))
	}
	if b.metadata.Len() > 0 {
		d.Set("metadata", value.FromMapping(b.metadata))
	}
}

func readCommonDict(d *value.Mapping) base {
	b := newBase()
	if v, ok := d.Get("label"); ok {
		b.label, _ = v.String()
	}
	if v, ok := d.Get("description"); ok {
		b.description, _ = v.String()
	}
	if v, ok := d.Get("metadata"); ok {
		if m, err := v.Mapping(); err == nil {
			b.metadata = m
		}
	}
	return b
}
