// Package dataset implements the CSDM Dataset aggregate (§4.5): the
// dimensions/dependent_variables grid, focus markers, tags, and metadata
// that tie a collection of DependentVariables to a shared coordinate grid.
//
// Construction and every cross-constraint-sensitive setter follow mebo's
// NumericEncoderConfig discipline: build the candidate state, validate it,
// and only then swap it into the receiver, so a failed setter never leaves
// the Dataset in a partially-updated state.
package dataset

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/dimension"
	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/grid"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/value"
)

// Dataset is the CSDM top-level aggregate (§3 Dataset, §4.5).
type Dataset struct {
	id uuid.UUID

	dimensions          []dimension.Dimension
	dimensionPrecedence []int
	dependentVariables  []*dependentvariable.DependentVariable
	tags                []string
	description         string
	title               string
	focus               *Datum
	previousFocus       *Datum
	metadata            *value.Mapping
	version             string
	timestamp           string
	geographicCoord     *GeographicCoordinate
	readOnly            bool
}

// New constructs a Dataset, validating the §3/§4.5 cross-constraints:
// every DV's size must equal the dimension grid's point count (for a sparse
// DV, its vertex count or the vertex count times the product of the
// non-sparse dimensions' counts), and dimension_precedence (if given) must be a permutation of
// 0..len(dimensions).
func New(dimensions []dimension.Dimension, dependentVariables []*dependentvariable.DependentVariable, dimensionPrecedence []int) (*Dataset, error) {
	if len(dependentVariables) == 0 {
		return nil, errs.ErrNoDependentVariables
	}
	if err := validateGrid(dimensions, dependentVariables); err != nil {
		return nil, err
	}
	if err := validatePrecedence(dimensionPrecedence, len(dimensions)); err != nil {
		return nil, err
	}

	ds := &Dataset{
		id:                  uuid.New(),
		dimensions:          append([]dimension.Dimension(nil), dimensions...),
		dependentVariables:  append([]*dependentvariable.DependentVariable(nil), dependentVariables...),
		dimensionPrecedence: append([]int(nil), dimensionPrecedence...),
		metadata:            value.NewMapping(),
		version:             "1.0",
	}
	for _, dv := range ds.dependentVariables {
		dv.SetOwner(ds)
	}
	return ds, nil
}

// NewEmpty constructs a Dataset with no dependent variables attached yet,
// bypassing the "at least one DV" constraint; dependent variables are
// attached later via AddEmptyDependentVariable or SetDependentVariables.
func NewEmpty(dimensions []dimension.Dimension) *Dataset {
	return &Dataset{
		id:         uuid.New(),
		dimensions: append([]dimension.Dimension(nil), dimensions...),
		metadata:   value.NewMapping(),
		version:    "1.0",
	}
}

func npts(dimensions []dimension.Dimension) []int {
	out := make([]int, len(dimensions))
	for i, d := range dimensions {
		out[i] = d.Count()
	}
	return out
}

// validateGrid checks §3's per-DV size invariant: size(v) equals G when
// dense, or matches the sparse-sampling-adjusted expectation when v carries
// sparse sampling.
func validateGrid(dimensions []dimension.Dimension, dvs []*dependentvariable.DependentVariable) error {
	g := grid.Product(npts(dimensions))
	for _, dv := range dvs {
		size := dv.Size()
		ss := dv.SparseSampling()
		if ss == nil {
			if size != g {
				return errs.ErrGridProductMismatch
			}
			continue
		}
		vertexCount := len(ss.Vertices())
		sparseDimIndexes := ss.DimensionIndexes()
		if len(sparseDimIndexes) == len(dimensions) {
			if size != vertexCount {
				return errs.ErrGridProductMismatch
			}
			continue
		}
		ignored := make(map[int]struct{}, len(sparseDimIndexes))
		for _, d := range sparseDimIndexes {
			ignored[d] = struct{}{}
		}
		denseProduct := grid.ProductIgnoring(npts(dimensions), ignored)
		if size != vertexCount*denseProduct {
			return errs.ErrGridProductMismatch
		}
	}
	return nil
}

func validatePrecedence(precedence []int, dimCount int) error {
	if len(precedence) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(precedence))
	for _, p := range precedence {
		if p < 0 || p >= dimCount {
			return errs.ErrDimensionPrecedenceBad
		}
		if _, dup := seen[p]; dup {
			return errs.ErrDimensionPrecedenceDup
		}
		seen[p] = struct{}{}
	}
	return nil
}

func (ds *Dataset) ID() uuid.UUID { return ds.id }

func (ds *Dataset) Dimensions() []dimension.Dimension {
	out := make([]dimension.Dimension, len(ds.dimensions))
	copy(out, ds.dimensions)
	return out
}

// SetDimensions replaces the dimension list, revalidating the grid
// constraint against the current dependent variables.
func (ds *Dataset) SetDimensions(dims []dimension.Dimension) error {
	if err := validateGrid(dims, ds.dependentVariables); err != nil {
		return err
	}
	ds.dimensions = append([]dimension.Dimension(nil), dims...)
	return nil
}

func (ds *Dataset) DimensionPrecedence() []int {
	out := make([]int, len(ds.dimensionPrecedence))
	copy(out, ds.dimensionPrecedence)
	return out
}

// SetDimensionPrecedence revalidates the permutation constraint before
// committing.
func (ds *Dataset) SetDimensionPrecedence(p []int) error {
	if err := validatePrecedence(p, len(ds.dimensions)); err != nil {
		return err
	}
	ds.dimensionPrecedence = append([]int(nil), p...)
	return nil
}

func (ds *Dataset) DependentVariables() []*dependentvariable.DependentVariable {
	out := make([]*dependentvariable.DependentVariable, len(ds.dependentVariables))
	copy(out, ds.dependentVariables)
	return out
}

// SetDependentVariables replaces the DV list, revalidating the grid
// constraint and re-pointing each DV's owner weak-reference at ds.
func (ds *Dataset) SetDependentVariables(dvs []*dependentvariable.DependentVariable) error {
	if len(dvs) == 0 {
		return errs.ErrNoDependentVariables
	}
	if err := validateGrid(ds.dimensions, dvs); err != nil {
		return err
	}
	ds.dependentVariables = append([]*dependentvariable.DependentVariable(nil), dvs...)
	for _, dv := range ds.dependentVariables {
		dv.SetOwner(ds)
	}
	return nil
}

// AddEmptyDependentVariable attaches a freshly allocated DV whose buffers
// are zero-filled to match size (or G, "same as grid", when size <= 0),
// sets its owner weak-ref, and returns it (§4.5).
func (ds *Dataset) AddEmptyDependentVariable(quantityType string, elementType numeric.Type, size int) (*dependentvariable.DependentVariable, error) {
	if size <= 0 {
		size = grid.Product(npts(ds.dimensions))
	}
	dv, err := dependentvariable.New(dependentvariable.Params{
		Kind:         dependentvariable.KindInternal,
		QuantityType: quantityType,
		ElementType:  elementType,
		ExplicitSize: size,
	})
	if err != nil {
		return nil, err
	}
	if err := validateGrid(ds.dimensions, append(ds.dependentVariables, dv)); err != nil {
		return nil, err
	}
	dv.SetOwner(ds)
	ds.dependentVariables = append(ds.dependentVariables, dv)
	return dv, nil
}

func (ds *Dataset) Tags() []string {
	out := make([]string, len(ds.tags))
	copy(out, ds.tags)
	return out
}
func (ds *Dataset) SetTags(t []string) { ds.tags = append([]string(nil), t...) }

func (ds *Dataset) Description() string          { return ds.description }
func (ds *Dataset) SetDescription(d string)       { ds.description = d }
func (ds *Dataset) Title() string                 { return ds.title }
func (ds *Dataset) SetTitle(t string)             { ds.title = t }

func (ds *Dataset) Focus() *Datum            { return ds.focus }
func (ds *Dataset) SetFocus(d *Datum)        { ds.focus = d }
func (ds *Dataset) PreviousFocus() *Datum    { return ds.previousFocus }
func (ds *Dataset) SetPreviousFocus(d *Datum) { ds.previousFocus = d }

func (ds *Dataset) Metadata() *value.Mapping     { return ds.metadata }
func (ds *Dataset) SetMetadata(m *value.Mapping) {
	if m == nil {
		m = value.NewMapping()
	}
	ds.metadata = m
}

func (ds *Dataset) Version() string      { return ds.version }
func (ds *Dataset) Timestamp() string    { return ds.timestamp }
func (ds *Dataset) SetTimestamp(t string) { ds.timestamp = t }

func (ds *Dataset) GeographicCoordinate() *GeographicCoordinate     { return ds.geographicCoord }
func (ds *Dataset) SetGeographicCoordinate(g *GeographicCoordinate) { ds.geographicCoord = g }

func (ds *Dataset) ReadOnly() bool       { return ds.readOnly }
func (ds *Dataset) SetReadOnly(b bool)   { ds.readOnly = b }

// ToDictionary renders the Dataset per §4.6 step 4's key order.
func (ds *Dataset) ToDictionary() *value.Mapping {
	d := value.NewMapping()
	d.Set("version", value.FromString(ds.version))
	if ds.timestamp != "" {
		d.Set("timestamp", value.FromString(ds.timestamp))
	}
	if ds.geographicCoord != nil {
		d.Set("geographic_coordinate", value.FromMapping(ds.geographicCoord.toDictionary()))
	}
	d.Set("read_only", value.FromBool(ds.readOnly))
	if ds.description != "" {
		d.Set("description", value.FromString(ds.description))
	}
	if ds.title != "" {
		d.Set("title", value.FromString(ds.title))
	}
	tagsArr := value.NewArray()
	for _, t := range ds.tags {
		tagsArr.Append(value.FromString(t))
	}
	d.Set("tags", value.FromArray(tagsArr))
	if ds.metadata.Len() > 0 {
		d.Set("metadata", value.FromMapping(ds.metadata))
	}

	dimsArr := value.NewArray()
	for _, dim := range ds.dimensions {
		dimsArr.Append(value.FromMapping(dim.ToDictionary()))
	}
	d.Set("dimensions", value.FromArray(dimsArr))

	if len(ds.dimensionPrecedence) > 0 {
		precArr := value.NewArray()
		for _, p := range ds.dimensionPrecedence {
			precArr.Append(value.FromNumber(value.Int(int64(p))))
		}
		d.Set("dimension_precedence", value.FromArray(precArr))
	}

	dvsArr := value.NewArray()
	for _, dv := range ds.dependentVariables {
		dvsArr.Append(value.FromMapping(dv.ToDictionary()))
	}
	d.Set("dependent_variables", value.FromArray(dvsArr))

	if ds.focus != nil {
		d.Set("focus", value.FromMapping(ds.focus.toDictionary()))
	}
	if ds.previousFocus != nil {
		d.Set("previous_focus", value.FromMapping(ds.previousFocus.toDictionary()))
	}
	return d
}

// FromDictionary reconstructs a Dataset from its to_dictionary form.
func FromDictionary(d *value.Mapping) (*Dataset, error) {
	var dims []dimension.Dimension
	if v, ok := d.Get("dimensions"); ok {
		arr, err := v.Array()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "dimensions", Want: "array", Got: v.Kind().String()}
		}
		for i := 0; i < arr.Len(); i++ {
			dm, err := arr.At(i).Mapping()
			if err != nil {
				return nil, &errs.TypeMismatchError{Field: "dimensions[]", Want: "mapping", Got: arr.At(i).Kind().String()}
			}
			dim, err := dimension.FromDictionary(dm)
			if err != nil {
				return nil, err
			}
			dims = append(dims, dim)
		}
	}

	var dvs []*dependentvariable.DependentVariable
	if v, ok := d.Get("dependent_variables"); ok {
		arr, err := v.Array()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "dependent_variables", Want: "array", Got: v.Kind().String()}
		}
		for i := 0; i < arr.Len(); i++ {
			dm, err := arr.At(i).Mapping()
			if err != nil {
				return nil, &errs.TypeMismatchError{Field: "dependent_variables[]", Want: "mapping", Got: arr.At(i).Kind().String()}
			}
			dv, err := dependentvariable.FromDictionary(dm)
			if err != nil {
				return nil, err
			}
			dvs = append(dvs, dv)
		}
	}

	var precedence []int
	if v, ok := d.Get("dimension_precedence"); ok {
		arr, err := v.Array()
		if err == nil {
			for i := 0; i < arr.Len(); i++ {
				n, err := arr.At(i).Number()
				if err == nil {
					precedence = append(precedence, int(n.Int64()))
				}
			}
		}
	}

	var ds *Dataset
	var err error
	if len(dvs) == 0 {
		ds = NewEmpty(dims)
	} else {
		ds, err = New(dims, dvs, precedence)
		if err != nil {
			return nil, err
		}
	}

	if v, ok := d.Get("version"); ok {
		ds.version, _ = v.String()
	}
	if v, ok := d.Get("timestamp"); ok {
		ds.timestamp, _ = v.String()
	}
	if v, ok := d.Get("read_only"); ok {
		ds.readOnly, _ = v.Bool()
	}
	if v, ok := d.Get("description"); ok {
		ds.description, _ = v.String()
	}
	if v, ok := d.Get("title"); ok {
		ds.title, _ = v.String()
	}
	if v, ok := d.Get("tags"); ok {
		arr, err := v.Array()
		if err == nil {
			for i := 0; i < arr.Len(); i++ {
				s, _ := arr.At(i).String()
				ds.tags = append(ds.tags, s)
			}
		}
	}
	if v, ok := d.Get("metadata"); ok {
		m, err := v.Mapping()
		if err == nil {
			ds.metadata = m
		}
	}
	if v, ok := d.Get("geographic_coordinate"); ok {
		gm, err := v.Mapping()
		if err == nil {
			g, err := geoFromDictionary(gm)
			if err == nil {
				ds.geographicCoord = &g
			}
		}
	}
	if v, ok := d.Get("focus"); ok {
		fm, err := v.Mapping()
		if err == nil {
			f, err := datumFromDictionary(fm)
			if err == nil {
				ds.focus = &f
			}
		}
	}
	if v, ok := d.Get("previous_focus"); ok {
		fm, err := v.Mapping()
		if err == nil {
			f, err := datumFromDictionary(fm)
			if err == nil {
				ds.previousFocus = &f
			}
		}
	}
	return ds, nil
}

// Clone performs a deep copy via a dictionary round-trip (§4.5).
func (ds *Dataset) Clone() (*Dataset, error) {
	return FromDictionary(ds.ToDictionary())
}

// ContentHash returns a 64-bit content fingerprint over the Dataset's
// to_dictionary form rendered as canonical JSON, used to cheaply compare
// two in-memory datasets or detect whether an external side file's
// companion JSON changed.
func (ds *Dataset) ContentHash(render func(*value.Mapping) ([]byte, error)) (uint64, error) {
	b, err := render(ds.ToDictionary())
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}
