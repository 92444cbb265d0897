// Package sparse implements CSDM's SparseSampling description: a record of
// which grid vertices a dataset actually carries data for, across a
// named subset of its dimension indices.
//
// Encoding mirrors the width-selected packing mebo's section package uses
// for its index entries (u8/u16/u32/u64, picked by the largest index
// value actually present) rather than always spending 8 bytes per index.
package sparse

import (
	"encoding/base64"
	"fmt"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/value"
)

// Encoding selects how sparse vertex indices are carried in a to_dictionary
// form.
type Encoding string

const (
	EncodingNone   Encoding = "none"
	EncodingBase64 Encoding = "base64"
)

// UnsignedWidth is the on-wire integer width used to pack vertex indices.
type UnsignedWidth uint8

const (
	WidthU8 UnsignedWidth = iota
	WidthU16
	WidthU32
	WidthU64
)

func (w UnsignedWidth) byteSize() int {
	switch w {
	case WidthU8:
		return 1
	case WidthU16:
		return 2
	case WidthU32:
		return 4
	default:
		return 8
	}
}

func (w UnsignedWidth) max() uint64 {
	switch w {
	case WidthU8:
		return 0xFF
	case WidthU16:
		return 0xFFFF
	case WidthU32:
		return 0xFFFFFFFF
	default:
		return 0xFFFFFFFFFFFFFFFF
	}
}

// narrowestWidth picks the smallest width that can hold every value in vs.
func narrowestWidth(vs []int) UnsignedWidth {
	var max uint64
	for _, v := range vs {
		if v < 0 {
			continue
		}
		if u := uint64(v); u > max {
			max = u
		}
	}
	switch {
	case max <= WidthU8.max():
		return WidthU8
	case max <= WidthU16.max():
		return WidthU16
	case max <= WidthU32.max():
		return WidthU32
	default:
		return WidthU64
	}
}

// SparseSampling describes which grid vertices a dataset actually carries
// data for, over dimension_indexes: "the subset of a Dataset's dimension
// indices that are sparsely sampled" (spec §3/§4.2). Each vertex is one
// IndexPairSet holding exactly one (dim_index, coord_index) pair per entry
// in dimensionIndexes.
type SparseSampling struct {
	dimensionIndexes []int
	vertices         []*value.IndexPairSet
	unsignedWidth    UnsignedWidth
	encoding         Encoding
	description      string
}

// New creates a SparseSampling over dimensionIndexes with the explicit
// vertex list. Every vertex must carry exactly len(dimensionIndexes) pairs,
// each naming a dimension in dimensionIndexes.
func New(dimensionIndexes []int, vertices []*value.IndexPairSet) (*SparseSampling, error) {
	if len(dimensionIndexes) == 0 {
		return nil, &errs.InvalidArgumentError{Field: "dimension_indexes", Reason: "must not be empty"}
	}
	known := make(map[int]struct{}, len(dimensionIndexes))
	for _, di := range dimensionIndexes {
		known[di] = struct{}{}
	}
	for _, vertex := range vertices {
		if vertex.Len() != len(dimensionIndexes) {
			return nil, errs.ErrSparseVertexCardinality
		}
		for _, pair := range vertex.Items() {
			if _, ok := known[pair.DimIndex]; !ok {
				return nil, &errs.InvalidArgumentError{Field: "vertices", Reason: fmt.Sprintf("vertex references dimension %d not in dimension_indexes", pair.DimIndex)}
			}
		}
	}

	di := make([]int, len(dimensionIndexes))
	copy(di, dimensionIndexes)

	all := make([]int, 0, len(dimensionIndexes)+len(vertices)*2)
	all = append(all, dimensionIndexes...)
	for _, vertex := range vertices {
		for _, pair := range vertex.Items() {
			all = append(all, pair.CoordIndex)
		}
	}
	width := narrowestWidth(all)

	vs := make([]*value.IndexPairSet, len(vertices))
	copy(vs, vertices)

	return &SparseSampling{
		dimensionIndexes: di,
		vertices:         vs,
		unsignedWidth:    width,
		encoding:         EncodingNone,
	}, nil
}

func (s *SparseSampling) DimensionIndexes() []int {
	out := make([]int, len(s.dimensionIndexes))
	copy(out, s.dimensionIndexes)
	return out
}

// Vertices returns the vertex list, one IndexPairSet per sampled grid
// vertex, each directly usable as the fixed_pairs input to cross-section.
func (s *SparseSampling) Vertices() []*value.IndexPairSet {
	out := make([]*value.IndexPairSet, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = v.Clone()
	}
	return out
}

func (s *SparseSampling) UnsignedWidth() UnsignedWidth { return s.unsignedWidth }
func (s *SparseSampling) Encoding() Encoding            { return s.encoding }
func (s *SparseSampling) Description() string           { return s.description }
func (s *SparseSampling) SetDescription(d string)       { s.description = d }

// SetEncoding chooses the on-wire form future ToDictionary calls use.
func (s *SparseSampling) SetEncoding(e Encoding) error {
	if e != EncodingNone && e != EncodingBase64 {
		return &errs.InvalidArgumentError{Field: "encoding", Reason: "must be \"none\" or \"base64\""}
	}
	s.encoding = e
	return nil
}

// packIndices packs a slice of non-negative indices into unsignedWidth-sized
// little-endian words.
func packIndices(indices []int, width UnsignedWidth) []byte {
	size := width.byteSize()
	buf := make([]byte, len(indices)*size)
	for i, v := range indices {
		u := uint64(v)
		off := i * size
		for b := 0; b < size; b++ {
			buf[off+b] = byte(u >> (8 * b))
		}
	}
	return buf
}

func unpackIndices(buf []byte, width UnsignedWidth) ([]int, error) {
	size := width.byteSize()
	if size == 0 || len(buf)%size != 0 {
		return nil, &errs.DecodeError{Source: "sparse_sampling", Reason: "buffer length not a multiple of element size"}
	}
	n := len(buf) / size
	out := make([]int, n)
	for i := 0; i < n; i++ {
		var u uint64
		off := i * size
		for b := 0; b < size; b++ {
			u |= uint64(buf[off+b]) << (8 * b)
		}
		out[i] = int(u)
	}
	return out, nil
}

// flattenVertices lays the vertex list out vertex-major: for each vertex,
// its coordinate index along each of dimensionIndexes, in that order.
func (s *SparseSampling) flattenVertices() []int {
	out := make([]int, 0, len(s.vertices)*len(s.dimensionIndexes))
	for _, vertex := range s.vertices {
		for _, dim := range s.dimensionIndexes {
			coord, _ := vertex.Get(dim)
			out = append(out, coord)
		}
	}
	return out
}

// ToDictionary renders the sparse sampling using the current Encoding.
func (s *SparseSampling) ToDictionary() *value.Mapping {
	d := value.NewMapping()

	diArr := value.NewArray()
	for _, di := range s.dimensionIndexes {
		diArr.Append(value.FromNumber(value.Int(int64(di))))
	}
	d.Set("dimension_indexes", value.FromArray(diArr))

	d.Set("unsigned_integer_type", value.FromString(widthName(s.unsignedWidth)))
	d.Set("encoding", value.FromString(string(s.encoding)))
	if s.description != "" {
		d.Set("description", value.FromString(s.description))
	}

	switch s.encoding {
	case EncodingBase64:
		flat := s.flattenVertices()
		buf := packIndices(flat, s.unsignedWidth)
		d.Set("sparse_grid_vertexes", value.FromString(base64.StdEncoding.EncodeToString(buf)))
	default:
		arr := value.NewArray()
		for _, v := range s.flattenVertices() {
			arr.Append(value.FromNumber(value.Int(int64(v))))
		}
		d.Set("sparse_grid_vertexes", value.FromArray(arr))
	}
	return d
}

func widthName(w UnsignedWidth) string {
	switch w {
	case WidthU8:
		return "uint8"
	case WidthU16:
		return "uint16"
	case WidthU32:
		return "uint32"
	default:
		return "uint64"
	}
}

func parseWidthName(name string) (UnsignedWidth, error) {
	switch name {
	case "uint8":
		return WidthU8, nil
	case "uint16":
		return WidthU16, nil
	case "uint32":
		return WidthU32, nil
	case "uint64":
		return WidthU64, nil
	default:
		return 0, &errs.TypeMismatchError{Field: "unsigned_integer_type", Want: "u8/u16/u32/u64", Got: name}
	}
}

// FromDictionary reconstructs a SparseSampling from its to_dictionary form.
func FromDictionary(d *value.Mapping) (*SparseSampling, error) {
	diV, ok := d.Get("dimension_indexes")
	if !ok {
		return nil, &errs.InvalidArgumentError{Field: "dimension_indexes", Reason: "missing"}
	}
	diArr, err := diV.Array()
	if err != nil {
		return nil, &errs.TypeMismatchError{Field: "dimension_indexes", Want: "array", Got: diV.Kind().String()}
	}
	dimensionIndexes := make([]int, diArr.Len())
	for i := 0; i < diArr.Len(); i++ {
		n, err := diArr.At(i).Number()
		if err != nil {
			return nil, &errs.TypeMismatchError{Field: "dimension_indexes[]", Want: "number", Got: diArr.At(i).Kind().String()}
		}
		dimensionIndexes[i] = int(n.Int64())
	}

	width := WidthU64
	if v, ok := d.Get("unsigned_integer_type"); ok {
		name, _ := v.String()
		width, err = parseWidthName(name)
		if err != nil {
			return nil, err
		}
	}

	encoding := EncodingNone
	if v, ok := d.Get("encoding"); ok {
		s, _ := v.String()
		encoding = Encoding(s)
	}

	dimCount := len(dimensionIndexes)
	var flat []int
	if vv, ok := d.Get("sparse_grid_vertexes"); ok {
		switch encoding {
		case EncodingBase64:
			s, err := vv.String()
			if err != nil {
				return nil, &errs.TypeMismatchError{Field: "sparse_grid_vertexes", Want: "string", Got: vv.Kind().String()}
			}
			buf, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, &errs.DecodeError{Source: "sparse_grid_vertexes", Reason: err.Error()}
			}
			flat, err = unpackIndices(buf, width)
			if err != nil {
				return nil, err
			}
		default:
			arr, err := vv.Array()
			if err != nil {
				return nil, &errs.TypeMismatchError{Field: "sparse_grid_vertexes", Want: "array", Got: vv.Kind().String()}
			}
			flat = make([]int, arr.Len())
			for i := 0; i < arr.Len(); i++ {
				n, err := arr.At(i).Number()
				if err != nil {
					return nil, &errs.TypeMismatchError{Field: "sparse_grid_vertexes[]", Want: "number", Got: arr.At(i).Kind().String()}
				}
				flat[i] = int(n.Int64())
			}
		}
	}

	if dimCount > 0 && len(flat)%dimCount != 0 {
		return nil, &errs.ShapeError{Field: "sparse_grid_vertexes", Want: dimCount, Got: len(flat) % dimCount}
	}

	var vertices []*value.IndexPairSet
	if dimCount > 0 {
		nVertices := len(flat) / dimCount
		vertices = make([]*value.IndexPairSet, nVertices)
		for v := 0; v < nVertices; v++ {
			pairs := value.NewIndexPairSet()
			for j, dim := range dimensionIndexes {
				pairs.Set(dim, flat[v*dimCount+j])
			}
			vertices[v] = pairs
		}
	}

	s, err := New(dimensionIndexes, vertices)
	if err != nil {
		return nil, err
	}
	s.unsignedWidth = width
	s.encoding = encoding
	if v, ok := d.Get("description"); ok {
		s.description, _ = v.String()
	}
	return s, nil
}

func (s *SparseSampling) Clone() *SparseSampling {
	out := *s
	out.dimensionIndexes = make([]int, len(s.dimensionIndexes))
	copy(out.dimensionIndexes, s.dimensionIndexes)
	out.vertices = s.Vertices()
	return &out
}
