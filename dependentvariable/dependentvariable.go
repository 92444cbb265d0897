// Package dependentvariable implements CSDM's DependentVariable: a
// component store with a full NumericType dispatch, a quantity-type shape
// (scalar/vector_N/pixel_N/matrix_R_C/symmetric_matrix_N), and three value
// encodings (inline numeric array, base64, external file).
//
// Element-type handling is delegated to the numeric package, whose
// per-element accessors switch on the element type at every call.
package dependentvariable

import (
	"fmt"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/grid"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/sparse"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// Kind distinguishes where a DV's component payload physically lives.
type Kind string

const (
	KindInternal Kind = "internal"
	KindExternal Kind = "external"
)

// Encoding selects how components are rendered in to_dictionary.
type Encoding string

const (
	EncodingNone   Encoding = "none"
	EncodingBase64 Encoding = "base64"
	EncodingRaw    Encoding = "raw"
)

// DependentVariable is a CSDM component store: one or more equal-length
// byte buffers (one per quantity_type component) holding element_type
// values, plus the quantity/unit metadata describing how to interpret them.
type DependentVariable struct {
	kind          Kind
	encoding      Encoding
	componentsURL string

	name         string
	description  string
	metadata     *value.Mapping
	quantityName string
	quantityType string
	unitVal      unit.Unit
	elementType  numeric.Type

	components      []*value.BytesBuffer
	componentLabels []string
	sparseSampling  *sparse.SparseSampling

	owner any
}

// Params bundles the canonical factory's named arguments (§4.3).
type Params struct {
	Kind               Kind
	Name               string
	Description        string
	Unit               unit.Unit
	QuantityName       string
	QuantityType       string
	ElementType        numeric.Type
	Encoding           Encoding
	ComponentsURL      string
	ComponentsSupplied []*value.BytesBuffer
	CopyComponents     bool
	ExplicitSize       int
	ComponentLabels    []string
	SparseSampling     *sparse.SparseSampling
	CopySparseSampling bool
	Metadata           *value.Mapping
}

// New is the canonical DependentVariable factory (§4.3).
func New(p Params) (*DependentVariable, error) {
	count, err := componentCount(p.QuantityType)
	if err != nil {
		return nil, err
	}

	if err := validateQuantityDimensionality(p.QuantityName, p.Unit); err != nil {
		return nil, err
	}

	var components []*value.BytesBuffer
	switch {
	case p.ComponentsSupplied != nil:
		if len(p.ComponentsSupplied) != count {
			return nil, &errs.ShapeError{Field: "components", Want: count, Got: len(p.ComponentsSupplied)}
		}
		byteLen := -1
		for _, c := range p.ComponentsSupplied {
			if byteLen == -1 {
				byteLen = c.Len()
			} else if c.Len() != byteLen {
				return nil, errs.ErrComponentByteLenMismatch
			}
		}
		components = make([]*value.BytesBuffer, count)
		for i, c := range p.ComponentsSupplied {
			if p.CopyComponents {
				components[i] = c.Clone()
			} else {
				components[i] = c
			}
		}
	case p.ExplicitSize > 0:
		byteLen := p.ExplicitSize * p.ElementType.ElementSize()
		components = make([]*value.BytesBuffer, count)
		for i := range components {
			components[i] = value.ZeroBytesBuffer(byteLen)
		}
	case p.Kind == KindExternal && p.ComponentsURL != "":
		components = make([]*value.BytesBuffer, count)
		for i := range components {
			components[i] = value.ZeroBytesBuffer(0)
		}
	default:
		return nil, &errs.InvalidArgumentError{Field: "components", Reason: "must supply components_supplied, explicit_size > 0, or kind=external with components_url"}
	}

	labels := p.ComponentLabels
	if len(labels) == 0 {
		labels = make([]string, count)
		for i := range labels {
			labels[i] = fmt.Sprintf("component-%d", i)
		}
	}
	if len(labels) != count {
		return nil, errs.ErrComponentLabelsMismatch
	}

	if p.Kind == KindExternal && p.ComponentsURL == "" {
		return nil, errs.ErrMissingComponentsURL
	}
	if p.Kind == KindInternal && p.ComponentsURL != "" {
		return nil, errs.ErrUnexpectedComponentsURL
	}

	var ss *sparse.SparseSampling
	if p.SparseSampling != nil {
		if p.CopySparseSampling {
			ss = p.SparseSampling.Clone()
		} else {
			ss = p.SparseSampling
		}
	}

	meta := p.Metadata
	if meta == nil {
		meta = value.NewMapping()
	}

	dv := &DependentVariable{
		kind:            p.Kind,
		encoding:        p.Encoding,
		componentsURL:   p.ComponentsURL,
		name:            p.Name,
		description:     p.Description,
		metadata:        meta,
		quantityName:    p.QuantityName,
		quantityType:    p.QuantityType,
		unitVal:         p.Unit,
		elementType:     p.ElementType,
		components:      components,
		componentLabels: labels,
		sparseSampling:  ss,
	}
	return dv, nil
}

func validateQuantityDimensionality(quantityName string, u unit.Unit) error {
	if quantityName == "" {
		return nil
	}
	expected, ok := unit.QuantityDimensionality(quantityName)
	if !ok {
		return &errs.DecodeError{Source: "quantity_name", Reason: "unknown quantity_name " + quantityName}
	}
	if expected != u.Dims {
		return errs.ErrDimensionalityMismatch
	}
	return nil
}

// Size returns the element count per component (buffer byte length /
// element size).
func (dv *DependentVariable) Size() int {
	if len(dv.components) == 0 {
		return 0
	}
	return dv.components[0].Len() / dv.elementType.ElementSize()
}

func (dv *DependentVariable) Kind() Kind                     { return dv.kind }
func (dv *DependentVariable) Encoding() Encoding              { return dv.encoding }
func (dv *DependentVariable) ComponentsURL() string           { return dv.componentsURL }
func (dv *DependentVariable) Name() string                    { return dv.name }
func (dv *DependentVariable) SetName(n string)                { dv.name = n }
func (dv *DependentVariable) Description() string             { return dv.description }
func (dv *DependentVariable) SetDescription(d string)          { dv.description = d }
func (dv *DependentVariable) Metadata() *value.Mapping         { return dv.metadata }
func (dv *DependentVariable) SetMetadata(m *value.Mapping)     { dv.metadata = m }
func (dv *DependentVariable) QuantityName() string             { return dv.quantityName }
func (dv *DependentVariable) QuantityType() string             { return dv.quantityType }
func (dv *DependentVariable) Unit() unit.Unit                  { return dv.unitVal }
func (dv *DependentVariable) ElementType() numeric.Type        { return dv.elementType }
func (dv *DependentVariable) ComponentLabels() []string {
	out := make([]string, len(dv.componentLabels))
	copy(out, dv.componentLabels)
	return out
}
func (dv *DependentVariable) Components() []*value.BytesBuffer {
	out := make([]*value.BytesBuffer, len(dv.components))
	copy(out, dv.components)
	return out
}
func (dv *DependentVariable) SparseSampling() *sparse.SparseSampling { return dv.sparseSampling }
func (dv *DependentVariable) SetOwner(o any)                         { dv.owner = o }
func (dv *DependentVariable) Owner() any                             { return dv.owner }

// --- shape predicates (§4.3) ---

func (dv *DependentVariable) IsScalar() bool { return isScalar(dv.quantityType) }

func (dv *DependentVariable) IsVector() (int, bool) { return isVector(dv.quantityType) }

func (dv *DependentVariable) IsPixel() (int, bool) { return isPixel(dv.quantityType) }

func (dv *DependentVariable) IsMatrix() (r, c int, ok bool) { return isMatrix(dv.quantityType) }

func (dv *DependentVariable) IsSymmetricMatrix() (int, bool) { return isSymmetricMatrix(dv.quantityType) }

// --- mutation (§4.3) ---

// InsertComponent inserts buffer at index, growing the component count by
// one and rewriting a parameterized quantity_type.
func (dv *DependentVariable) InsertComponent(index int, buffer *value.BytesBuffer, label string) error {
	if index < 0 || index > len(dv.components) {
		return &errs.InvalidArgumentError{Field: "index", Reason: "out of range"}
	}
	if len(dv.components) > 0 && buffer.Len() != dv.components[0].Len() {
		return errs.ErrComponentByteLenMismatch
	}
	dv.components = append(dv.components, nil)
	copy(dv.components[index+1:], dv.components[index:])
	dv.components[index] = buffer

	dv.componentLabels = append(dv.componentLabels, "")
	copy(dv.componentLabels[index+1:], dv.componentLabels[index:])
	dv.componentLabels[index] = label

	dv.quantityType = rewriteQuantityTypeForCount(dv.quantityType, len(dv.components))
	return nil
}

// RemoveComponent removes the component at index; it refuses when only one
// component remains.
func (dv *DependentVariable) RemoveComponent(index int) error {
	if len(dv.components) == 1 {
		return errs.ErrLastComponentRemoval
	}
	if index < 0 || index >= len(dv.components) {
		return &errs.InvalidArgumentError{Field: "index", Reason: "out of range"}
	}
	dv.components = append(dv.components[:index], dv.components[index+1:]...)
	dv.componentLabels = append(dv.componentLabels[:index], dv.componentLabels[index+1:]...)
	dv.quantityType = rewriteQuantityTypeForCount(dv.quantityType, len(dv.components))
	return nil
}

// SetComponentAt replaces the component at index; buffer must have equal
// byte length to the existing components.
func (dv *DependentVariable) SetComponentAt(index int, buffer *value.BytesBuffer) error {
	if index < 0 || index >= len(dv.components) {
		return &errs.InvalidArgumentError{Field: "index", Reason: "out of range"}
	}
	if buffer.Len() != dv.components[index].Len() {
		return errs.ErrComponentByteLenMismatch
	}
	dv.components[index] = buffer
	return nil
}

// SetSize truncates or grows every component buffer to newSize elements,
// zero-filling any new tail bytes.
func (dv *DependentVariable) SetSize(newSize int) {
	byteLen := newSize * dv.elementType.ElementSize()
	for _, c := range dv.components {
		c.Resize(byteLen)
	}
}

// SetElementType converts every element of every component buffer to
// newType per §4.3's widening/narrowing rules, replacing the buffers.
func (dv *DependentVariable) SetElementType(newType numeric.Type) {
	for i, c := range dv.components {
		converted := numeric.ConvertElements(dv.elementType, c.Bytes(), newType)
		dv.components[i] = value.NewBytesBuffer(converted, false)
	}
	dv.elementType = newType
}

// Append concatenates other's component buffers onto dv's, broadcasting
// dv's single buffer onto every component of other if dv has exactly one
// component (§4.3).
func (dv *DependentVariable) Append(other *DependentVariable) error {
	if dv.unitVal.Dims != other.unitVal.Dims {
		return fmt.Errorf("%w: %w", errs.ErrDimensionalityMismatch, &errs.TypeMismatchError{Field: "unit", Want: dv.unitVal.Dims.String(), Got: other.unitVal.Dims.String()})
	}
	if dv.elementType != other.elementType {
		return &errs.TypeMismatchError{Field: "element_type", Want: dv.elementType.String(), Got: other.elementType.String()}
	}
	switch {
	case len(dv.components) == len(other.components):
		for i := range dv.components {
			dv.components[i] = value.NewBytesBuffer(append(dv.components[i].Bytes(), other.components[i].Bytes()...), false)
		}
		return nil
	case len(dv.components) == 1:
		base := dv.components[0].Bytes()
		out := make([]*value.BytesBuffer, len(other.components))
		for i, oc := range other.components {
			buf := append(append([]byte{}, base...), oc.Bytes()...)
			out[i] = value.NewBytesBuffer(buf, false)
		}
		dv.components = out
		labels := make([]string, len(other.components))
		copy(labels, other.componentLabels)
		dv.componentLabels = labels
		dv.quantityType = rewriteQuantityTypeForCount(dv.quantityType, len(out))
		return nil
	default:
		return &errs.ShapeError{Field: "components", Want: len(dv.components), Got: len(other.components)}
	}
}

// --- value-at-offset accessors (§4.3) ---

// Float64At reads the element at offset i of component componentIndex as a
// float64 (wrapping modulo size(dv)).
func (dv *DependentVariable) Float64At(componentIndex, i int) float64 {
	return numeric.Float64At(dv.elementType, dv.components[componentIndex].Bytes(), i)
}

// Complex128At reads the element at offset i of component componentIndex as
// a complex128.
func (dv *DependentVariable) Complex128At(componentIndex, i int) complex128 {
	return numeric.Complex128At(dv.elementType, dv.components[componentIndex].Bytes(), i)
}

// PartAt reads the requested scalar projection of the element at offset i
// of component componentIndex.
func (dv *DependentVariable) PartAt(componentIndex, i int, part numeric.Part) float64 {
	return numeric.PartAt(dv.elementType, dv.components[componentIndex].Bytes(), i, part)
}

// SetValueAt writes v (expressed in valueUnit) into the element at offset i
// of component componentIndex, converting through valueUnit into dv's unit
// first.
func (dv *DependentVariable) SetValueAt(componentIndex, i int, v complex128, valueUnit unit.Unit) error {
	factor, err := valueUnit.ConversionFactor(dv.unitVal)
	if err != nil {
		return err
	}
	converted := complex(real(v)*factor, imag(v)*factor)
	numeric.SetComplex128At(dv.elementType, dv.components[componentIndex].Bytes(), i, converted)
	return nil
}

// --- in-place numeric transforms (§4.3); componentIndex < 0 means "all components" ---

func (dv *DependentVariable) componentRange(componentIndex int) []int {
	if componentIndex < 0 {
		out := make([]int, len(dv.components))
		for i := range out {
			out[i] = i
		}
		return out
	}
	return []int{componentIndex}
}

// ConvertToUnit scales every element in the selected components by the
// conversion factor to u, and updates the stored unit. Only valid for float
// or complex element types.
func (dv *DependentVariable) ConvertToUnit(componentIndex int, u unit.Unit) error {
	if !dv.elementType.IsFloat() {
		return &errs.UnsupportedOpError{Op: "convert_to_unit", Reason: "element_type must be float or complex"}
	}
	factor, err := dv.unitVal.ConversionFactor(u)
	if err != nil {
		return err
	}
	for _, ci := range dv.componentRange(componentIndex) {
		numeric.ConvertToUnit(dv.elementType, dv.components[ci].Bytes(), factor)
	}
	dv.unitVal = u
	return nil
}

// ZeroAll memsets the selected components to zero bytes.
func (dv *DependentVariable) ZeroAll(componentIndex int) {
	for _, ci := range dv.componentRange(componentIndex) {
		numeric.ZeroAll(dv.components[ci].Bytes())
	}
}

// ZeroPartInRange zeros part of every element in [lo, hi) for the selected
// components.
func (dv *DependentVariable) ZeroPartInRange(componentIndex, lo, hi int, part numeric.Part) {
	for _, ci := range dv.componentRange(componentIndex) {
		numeric.ZeroPartInRange(dv.elementType, dv.components[ci].Bytes(), lo, hi, part)
	}
}

// TakeAbsoluteValue applies |x| to the selected components; complex
// components downgrade the DV's element_type to its real counterpart.
func (dv *DependentVariable) TakeAbsoluteValue(componentIndex int) {
	origType := dv.elementType
	newType := origType
	for _, ci := range dv.componentRange(componentIndex) {
		var buf []byte
		newType, buf = numeric.TakeAbsoluteValue(origType, dv.components[ci].Bytes())
		dv.components[ci] = value.NewBytesBuffer(buf, false)
	}
	dv.elementType = newType
}

// MultiplyByDimensionlessComplexConstant scales the selected components by k.
func (dv *DependentVariable) MultiplyByDimensionlessComplexConstant(componentIndex int, k complex128) {
	for _, ci := range dv.componentRange(componentIndex) {
		numeric.MultiplyByDimensionlessComplexConstant(dv.elementType, dv.components[ci].Bytes(), k)
	}
}

// TakeComplexPart projects the selected components onto part. When applied
// to every component of a complex DV, the element type is downgraded to the
// matching real type (§4.3).
func (dv *DependentVariable) TakeComplexPart(componentIndex int, part numeric.Part) {
	origType := dv.elementType
	indices := dv.componentRange(componentIndex)
	for _, ci := range indices {
		_, buf := numeric.TakeComplexPart(origType, dv.components[ci].Bytes(), part)
		dv.components[ci] = value.NewBytesBuffer(buf, false)
	}
	if componentIndex < 0 && origType.IsComplex() {
		var realType numeric.Type
		for _, ci := range indices {
			var buf []byte
			realType, buf = numeric.DowngradeComplexToReal(origType, dv.components[ci].Bytes())
			dv.components[ci] = value.NewBytesBuffer(buf, false)
		}
		dv.elementType = realType
	}
}

// Conjugate negates the imaginary stride of the selected components;
// real-typed components are no-ops.
func (dv *DependentVariable) Conjugate(componentIndex int) {
	for _, ci := range dv.componentRange(componentIndex) {
		numeric.Conjugate(dv.elementType, dv.components[ci].Bytes())
	}
}

// --- cross-section and sparse packing (§4.3) ---

// CreateCrossSection builds a new DependentVariable holding one slice per
// component: the free axes (those not named in fixedPairs) vary, the fixed
// axes are pinned to the coordinates fixedPairs names.
func CreateCrossSection(dv *DependentVariable, npts []int, fixedPairs *value.IndexPairSet) (*DependentVariable, error) {
	fixed := map[int]int{}
	for _, p := range fixedPairs.Items() {
		fixed[p.DimIndex] = p.CoordIndex
	}

	free := make([]int, 0, len(npts))
	for i := range npts {
		if _, ok := fixed[i]; !ok {
			free = append(free, i)
		}
	}
	freeNpts := make([]int, len(free))
	for i, d := range free {
		freeNpts[i] = npts[d]
	}
	sizeOut := grid.Product(freeNpts)

	out := &DependentVariable{
		kind:            KindInternal,
		encoding:        dv.encoding,
		name:            dv.name,
		description:     dv.description,
		metadata:        dv.metadata.Clone(),
		quantityName:    dv.quantityName,
		quantityType:    dv.quantityType,
		unitVal:         dv.unitVal,
		elementType:     dv.elementType,
		componentLabels: dv.ComponentLabels(),
	}

	elemSize := dv.elementType.ElementSize()
	out.components = make([]*value.BytesBuffer, len(dv.components))
	for ci := range dv.components {
		dst := make([]byte, sizeOut*elemSize)
		for o := 0; o < sizeOut; o++ {
			freeIdx := grid.Unflatten(o, freeNpts)
			full := make([]int, len(npts))
			for i, d := range free {
				full[d] = freeIdx[i]
			}
			for d, c := range fixed {
				full[d] = c
			}
			srcOffset, err := grid.Flatten(full, npts)
			if err != nil {
				return nil, err
			}
			src := dv.components[ci].Bytes()
			copy(dst[o*elemSize:(o+1)*elemSize], src[srcOffset*elemSize:(srcOffset+1)*elemSize])
		}
		out.components[ci] = value.NewBytesBuffer(dst, false)
	}
	return out, nil
}

// CreatePackedSparseComponentsArray builds the components array obtained by
// treating every sparse vertex as a fixed_pairs input to CreateCrossSection
// and concatenating the resulting slices, per §4.3.
func CreatePackedSparseComponentsArray(dv *DependentVariable, npts []int) ([]*value.BytesBuffer, error) {
	if dv.sparseSampling == nil {
		return dv.Components(), nil
	}
	vertices := dv.sparseSampling.Vertices()

	out := make([]*value.BytesBuffer, len(dv.components))
	for i := range out {
		out[i] = value.ZeroBytesBuffer(0)
	}

	for _, vertex := range vertices {
		slice, err := CreateCrossSection(dv, npts, vertex)
		if err != nil {
			return nil, err
		}
		for i, c := range slice.components {
			out[i] = value.NewBytesBuffer(append(out[i].Bytes(), c.Bytes()...), false)
		}
	}
	return out, nil
}

// ComponentsDataBlob concatenates either the sparse-packed components (when
// sparse_sampling is non-empty) or all component buffers in order into one
// contiguous byte buffer — the external side-file payload (§4.3).
func ComponentsDataBlob(dv *DependentVariable, npts []int) ([]byte, error) {
	var comps []*value.BytesBuffer
	if dv.sparseSampling != nil {
		packed, err := CreatePackedSparseComponentsArray(dv, npts)
		if err != nil {
			return nil, err
		}
		comps = packed
	} else {
		comps = dv.Components()
	}
	var out []byte
	for _, c := range comps {
		out = append(out, numeric.ToLittleEndian(dv.elementType, c.Bytes())...)
	}
	return out, nil
}

func (dv *DependentVariable) Clone() *DependentVariable {
	out := *dv
	out.metadata = dv.metadata.Clone()
	out.components = make([]*value.BytesBuffer, len(dv.components))
	for i, c := range dv.components {
		out.components[i] = c.Clone()
	}
	out.componentLabels = make([]string, len(dv.componentLabels))
	copy(out.componentLabels, dv.componentLabels)
	if dv.sparseSampling != nil {
		out.sparseSampling = dv.sparseSampling.Clone()
	}
	out.owner = nil
	return &out
}

// ToDictionary renders the DV per §4.3/§4.6's encoding rules: base64 emits
// one base64 string per component, none decodes bytes into a Number array
// per component, raw/external omits components in favor of components_url
// (the actual side-file bytes are the serializer's concern).
func (dv *DependentVariable) ToDictionary() *value.Mapping {
	d := value.NewMapping()
	d.Set("type", value.FromString(string(dv.kind)))
	if dv.name != "" {
		d.Set("name", value.FromString(dv.name))
	}
	if dv.description != "" {
		d.Set("description", value.FromString(dv.description))
	}
	if dv.metadata.Len() > 0 {
		d.Set("metadata", value.FromMapping(dv.metadata))
	}
	d.Set("quantity_type", value.FromString(dv.quantityType))
	if dv.quantityName != "" {
		d.Set("quantity_name", value.FromString(dv.quantityName))
	}
	d.Set("unit", value.FromString(dv.unitVal.Symbol))
	d.Set("numeric_type", value.FromString(dv.elementType.String()))
	d.Set("encoding", value.FromString(string(dv.encoding)))

	labelsArr := value.NewArray()
	for _, l := range dv.componentLabels {
		labelsArr.Append(value.FromString(l))
	}
	d.Set("component_labels", value.FromArray(labelsArr))

	if dv.kind == KindExternal || dv.encoding == EncodingRaw {
		if dv.componentsURL != "" {
			d.Set("components_url", value.FromString(dv.componentsURL))
		}
	} else {
		compsArr := value.NewArray()
		for _, c := range dv.components {
			switch dv.encoding {
			case EncodingBase64:
				compsArr.Append(value.FromString(numeric.ToBase64(dv.elementType, c.Bytes())))
			default:
				compsArr.Append(value.FromArray(numeric.ToNumberArray(dv.elementType, c.Bytes())))
			}
		}
		d.Set("components", value.FromArray(compsArr))
	}

	if dv.sparseSampling != nil {
		d.Set("sparse_sampling", value.FromMapping(dv.sparseSampling.ToDictionary()))
	}
	return d
}

// FromDictionary reconstructs a DependentVariable from its to_dictionary
// form. Component bytes for external/raw DVs are left empty; the serializer
// is responsible for loading the side file and calling SetComponentAt.
func FromDictionary(d *value.Mapping) (*DependentVariable, error) {
	kind := KindInternal
	if v, ok := d.Get("type"); ok {
		s, _ := v.String()
		if s == string(KindExternal) {
			kind = KindExternal
		}
	}
	encoding := EncodingNone
	if v, ok := d.Get("encoding"); ok {
		s, _ := v.String()
		encoding = Encoding(s)
	}
	quantityType := "scalar"
	if v, ok := d.Get("quantity_type"); ok {
		quantityType, _ = v.String()
	}
	quantityName := ""
	if v, ok := d.Get("quantity_name"); ok {
		quantityName, _ = v.String()
	}
	u := unit.Unit{}
	if v, ok := d.Get("unit"); ok {
		sym, _ := v.String()
		if sym != "" {
			parsed, err := unit.ParseUnit(sym)
			if err == nil {
				u = parsed
			}
		}
	}
	elemType := numeric.F64
	if v, ok := d.Get("numeric_type"); ok {
		s, _ := v.String()
		if t, err := numeric.ParseType(s); err == nil {
			elemType = t
		}
	}
	name, description := "", ""
	if v, ok := d.Get("name"); ok {
		name, _ = v.String()
	}
	if v, ok := d.Get("description"); ok {
		description, _ = v.String()
	}
	var meta *value.Mapping
	if v, ok := d.Get("metadata"); ok {
		meta, _ = v.Mapping()
	}
	var labels []string
	if v, ok := d.Get("component_labels"); ok {
		arr, _ := v.Array()
		for i := 0; i < arr.Len(); i++ {
			s, _ := arr.At(i).String()
			labels = append(labels, s)
		}
	}
	componentsURL := ""
	if v, ok := d.Get("components_url"); ok {
		componentsURL, _ = v.String()
	}

	var supplied []*value.BytesBuffer
	if v, ok := d.Get("components"); ok {
		arr, err := v.Array()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "components", Want: "array", Got: v.Kind().String()}
		}
		supplied = make([]*value.BytesBuffer, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			el := arr.At(i)
			var raw []byte
			switch encoding {
			case EncodingBase64:
				s, err := el.String()
				if err != nil {
					return nil, &errs.TypeMismatchError{Field: "components[]", Want: "string", Got: el.Kind().String()}
				}
				raw, err = numeric.FromBase64(elemType, s)
				if err != nil {
					return nil, err
				}
			default:
				numArr, err := el.Array()
				if err != nil {
					return nil, &errs.TypeMismatchError{Field: "components[]", Want: "array", Got: el.Kind().String()}
				}
				raw, err = numeric.FromNumberArray(elemType, numArr)
				if err != nil {
					return nil, err
				}
			}
			supplied[i] = value.NewBytesBuffer(raw, false)
		}
	}

	var ss *sparse.SparseSampling
	if v, ok := d.Get("sparse_sampling"); ok {
		sd, err := v.Mapping()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "sparse_sampling", Want: "mapping", Got: v.Kind().String()}
		}
		ss, err = sparse.FromDictionary(sd)
		if err != nil {
			return nil, err
		}
	}

	p := Params{
		Kind:               kind,
		Name:               name,
		Description:        description,
		Unit:               u,
		QuantityName:       quantityName,
		QuantityType:       quantityType,
		ElementType:        elemType,
		Encoding:           encoding,
		ComponentsURL:      componentsURL,
		ComponentsSupplied: supplied,
		CopyComponents:     false,
		ComponentLabels:    labels,
		SparseSampling:     ss,
		CopySparseSampling: false,
		Metadata:           meta,
	}
	if supplied == nil && kind == KindExternal && componentsURL == "" {
		return nil, errs.ErrMissingComponentsURL
	}
	return New(p)
}
