package dataset

import (
	"testing"

	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/dimension"
	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/sparse"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
	"github.com/stretchr/testify/require"
)

func scalarDV(t *testing.T, n int) *dependentvariable.DependentVariable {
	t.Helper()
	dv, err := dependentvariable.New(dependentvariable.Params{
		Kind:         dependentvariable.KindInternal,
		QuantityType: "scalar",
		ElementType:  numeric.F64,
		ExplicitSize: n,
	})
	require.NoError(t, err)
	return dv
}

func seconds(t *testing.T, v float64) unit.Scalar {
	t.Helper()
	u, err := unit.ParseUnit("s")
	require.NoError(t, err)
	return unit.NewScalar(v, u)
}

func linearDim(t *testing.T, count int) dimension.Dimension {
	t.Helper()
	d, err := dimension.NewSILinear("time", count, seconds(t, 1.0), unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.NoError(t, err)
	return d
}

// TestProperty3DenseGridProductInvariant covers §8 universal invariant 3:
// for every Dataset, the grid-product invariant holds for every attached DV.
func TestProperty3DenseGridProductInvariant(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 12)
	ds, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)
	require.Equal(t, 12, ds.DependentVariables()[0].Size())
}

func TestNewRejectsGridProductMismatch(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 11)
	_, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.ErrorIs(t, err, errs.ErrGridProductMismatch)
}

func TestNewRejectsEmptyDependentVariables(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3)}
	_, err := New(dims, nil, nil)
	require.ErrorIs(t, err, errs.ErrNoDependentVariables)
}

func TestNewRejectsBadDimensionPrecedence(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 12)
	_, err := New(dims, []*dependentvariable.DependentVariable{dv}, []int{0, 0})
	require.ErrorIs(t, err, errs.ErrDimensionPrecedenceDup)

	_, err = New(dims, []*dependentvariable.DependentVariable{dv}, []int{0, 5})
	require.ErrorIs(t, err, errs.ErrDimensionPrecedenceBad)
}

// TestProperty3SparseGridProductInvariant covers §8 universal invariant 3
// for a DV carrying sparse sampling over a subset of the dimension indexes.
func TestProperty3SparseGridProductInvariant(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}

	vertices := []*value.IndexPairSet{
		value.NewIndexPairSet(value.IndexPair{DimIndex: 0, CoordIndex: 0}),
		value.NewIndexPairSet(value.IndexPair{DimIndex: 0, CoordIndex: 1}),
	}
	ss, err := sparse.New([]int{0}, vertices)
	require.NoError(t, err)

	dv, err := dependentvariable.New(dependentvariable.Params{
		Kind:           dependentvariable.KindInternal,
		QuantityType:   "scalar",
		ElementType:    numeric.F64,
		ExplicitSize:   2 * 4,
		SparseSampling: ss,
	})
	require.NoError(t, err)

	_, err = New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)
}

// TestE4CrossSectionAtDatasetLevel covers scenario E4: a 2-D dataset with
// dims count={3,4}, a scalar f64 DV of size 12 holding [0..12), fixing
// dim0=1 yields a new DV of size 4 holding [1,4,7,10].
func TestE4CrossSectionAtDatasetLevel(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 12)
	comp := dv.Components()[0]
	for i := 0; i < 12; i++ {
		numeric.SetFloat64At(numeric.F64, comp.Bytes(), i, float64(i))
	}
	_, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)

	fixed := value.NewIndexPairSet(value.IndexPair{DimIndex: 0, CoordIndex: 1})
	section, err := dependentvariable.CreateCrossSection(dv, []int{3, 4}, fixed)
	require.NoError(t, err)
	require.Equal(t, 4, section.Size())
	got := section.Components()[0].Bytes()
	for i, want := range []float64{1, 4, 7, 10} {
		require.Equal(t, want, numeric.Float64At(numeric.F64, got, i))
	}
}

// TestProperty5DatasetRoundTrip covers §8 round-trip law 5: import(export(D))
// == D up to ordering within unordered containers and timestamp refresh.
func TestProperty5DatasetRoundTrip(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 12)
	comp := dv.Components()[0]
	for i := 0; i < 12; i++ {
		numeric.SetFloat64At(numeric.F64, comp.Bytes(), i, float64(i))
	}
	ds, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)
	ds.SetTitle("roundtrip")
	ds.SetDescription("a dataset")
	ds.SetTags([]string{"a", "b"})

	back, err := FromDictionary(ds.ToDictionary())
	require.NoError(t, err)
	require.Equal(t, ds.Title(), back.Title())
	require.Equal(t, ds.Description(), back.Description())
	require.Equal(t, ds.Tags(), back.Tags())
	require.Len(t, back.Dimensions(), 2)
	require.Len(t, back.DependentVariables(), 1)
	require.Equal(t, ds.DependentVariables()[0].Components()[0].Bytes(), back.DependentVariables()[0].Components()[0].Bytes())
}

func TestCloneRoundTripsViaDictionary(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 2)}
	dv := scalarDV(t, 2)
	ds, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)
	ds.SetTitle("original")

	clone, err := ds.Clone()
	require.NoError(t, err)
	require.Equal(t, ds.Title(), clone.Title())
	require.NotSame(t, ds, clone)
}

func TestAddEmptyDependentVariableDefaultsSizeToGridProduct(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 12)
	ds, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)

	added, err := ds.AddEmptyDependentVariable("scalar", numeric.F64, 0)
	require.NoError(t, err)
	require.Equal(t, 12, added.Size())
	require.Len(t, ds.DependentVariables(), 2)
}

func TestSetDimensionsRevalidatesGrid(t *testing.T) {
	dims := []dimension.Dimension{linearDim(t, 3), linearDim(t, 4)}
	dv := scalarDV(t, 12)
	ds, err := New(dims, []*dependentvariable.DependentVariable{dv}, nil)
	require.NoError(t, err)

	err = ds.SetDimensions([]dimension.Dimension{linearDim(t, 5)})
	require.ErrorIs(t, err, errs.ErrGridProductMismatch)
}
