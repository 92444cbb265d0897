package unit

import (
	"math"
	"testing"

	"github.com/csdm-go/csdm/errs"
	"github.com/stretchr/testify/require"
)

func TestDimensionalityArithmetic(t *testing.T) {
	l := dimVec(1, 0, 0, 0, 0, 0, 0)
	tm := dimVec(0, 0, 1, 0, 0, 0, 0)
	require.Equal(t, dimVec(1, 0, 1, 0, 0, 0, 0), l.add(tm))
	require.Equal(t, dimVec(1, 0, -1, 0, 0, 0, 0), l.sub(tm))
	require.Equal(t, dimVec(-1, 0, 0, 0, 0, 0, 0), l.Neg())
}

func TestDimensionalityString(t *testing.T) {
	require.Equal(t, "1", Dimensionless.String())
	require.Equal(t, "L^1 T^-1", dimVec(1, 0, -1, 0, 0, 0, 0).String())
}

func TestParseUnitSimpleAndPrefixed(t *testing.T) {
	s, err := ParseUnit("s")
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Factor)

	ms, err := ParseUnit("ms")
	require.NoError(t, err)
	require.InDelta(t, 1e-3, ms.Factor, 1e-15)
	require.Equal(t, s.Dims, ms.Dims)
}

func TestParseUnitQuotient(t *testing.T) {
	hz, err := ParseUnit("1/s")
	require.NoError(t, err)
	s, err := ParseUnit("s")
	require.NoError(t, err)
	require.Equal(t, s.Dims.Neg(), hz.Dims)
}

func TestParseUnitExponent(t *testing.T) {
	m2, err := ParseUnit("m^2")
	require.NoError(t, err)
	m, err := ParseUnit("m")
	require.NoError(t, err)
	require.Equal(t, m.Dims.add(m.Dims), m2.Dims)
}

func TestParseUnitEmptyIsDimensionless(t *testing.T) {
	u, err := ParseUnit("")
	require.NoError(t, err)
	require.Equal(t, Dimensionless, u.Dims)
	require.Equal(t, 1.0, u.Factor)
}

func TestParseUnitUnknownSymbolErrors(t *testing.T) {
	_, err := ParseUnit("bogus")
	require.Error(t, err)
}

func TestParseUnitBadExponentErrors(t *testing.T) {
	_, err := ParseUnit("m^x")
	require.Error(t, err)
}

func TestGaussToTeslaConversionFactor(t *testing.T) {
	g, err := ParseUnit("G")
	require.NoError(t, err)
	tesla, err := ParseUnit("T")
	require.NoError(t, err)
	require.True(t, g.SameDimensionality(tesla))

	factor, err := g.ConversionFactor(tesla)
	require.NoError(t, err)
	require.InDelta(t, 1e-4, factor, 1e-12)
}

func TestConversionFactorDimensionalityMismatchErrors(t *testing.T) {
	s, err := ParseUnit("s")
	require.NoError(t, err)
	m, err := ParseUnit("m")
	require.NoError(t, err)
	_, err = s.ConversionFactor(m)
	require.ErrorIs(t, err, errs.ErrDimensionalityMismatch)
}

func TestParseScalar(t *testing.T) {
	sc, err := ParseScalar("3.0 s")
	require.NoError(t, err)
	require.Equal(t, 3.0, sc.Value)
	require.Equal(t, "s", sc.Unit.Symbol)

	plain, err := ParseScalar("1.0")
	require.NoError(t, err)
	require.Equal(t, Dimensionless, plain.Unit.Dims)
}

func TestParseScalarMissingNumberErrors(t *testing.T) {
	_, err := ParseScalar("Hz")
	require.Error(t, err)
}

func TestScalarIsFiniteRejectsNonFinite(t *testing.T) {
	require.True(t, NewScalar(1.0, Unit{}).IsFinite())
	require.False(t, NewScalar(math.Inf(1), Unit{}).IsFinite())
	require.False(t, NewScalar(math.NaN(), Unit{}).IsFinite())
}

func TestScalarAddConvertsUnits(t *testing.T) {
	a, err := ParseScalar("1.0 s")
	require.NoError(t, err)
	b, err := ParseScalar("500.0 ms")
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.InDelta(t, 1.5, sum.Value, 1e-12)
	require.Equal(t, "s", sum.Unit.Symbol)
}

func TestScalarEqualAcrossUnits(t *testing.T) {
	a, err := ParseScalar("1.0 s")
	require.NoError(t, err)
	b, err := ParseScalar("1000.0 ms")
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestScalarCompare(t *testing.T) {
	a, err := ParseScalar("2.0 s")
	require.NoError(t, err)
	b, err := ParseScalar("1.0 s")
	require.NoError(t, err)
	r, ok := a.Compare(b)
	require.True(t, ok)
	require.Equal(t, 1, r)
}

func TestScalarCompareIncompatibleUnitsNotOK(t *testing.T) {
	a, err := ParseScalar("2.0 s")
	require.NoError(t, err)
	b, err := ParseScalar("1.0 m")
	require.NoError(t, err)
	_, ok := a.Compare(b)
	require.False(t, ok)
}

func TestQuantityDimensionalityKnownAndUnknown(t *testing.T) {
	d, ok := QuantityDimensionality("Time")
	require.True(t, ok)
	require.Equal(t, dimVec(0, 0, 1, 0, 0, 0, 0), d)

	_, ok = QuantityDimensionality("not a quantity")
	require.False(t, ok)
}

func TestKnownQuantityNamesNonEmpty(t *testing.T) {
	require.NotEmpty(t, KnownQuantityNames())
}
