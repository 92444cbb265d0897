package dimension

import (
	"testing"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
	"github.com/stretchr/testify/require"
)

func seconds(t *testing.T, v float64) unit.Scalar {
	t.Helper()
	u, err := unit.ParseUnit("s")
	require.NoError(t, err)
	return unit.NewScalar(v, u)
}

func TestNewLabeledRejectsFewerThanTwoLabels(t *testing.T) {
	_, err := NewLabeled([]string{"only-one"})
	require.ErrorIs(t, err, errs.ErrEmptyCoordinateLabels)
}

func TestLabeledSetLabelAtBoundsChecked(t *testing.T) {
	l, err := NewLabeled([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.Error(t, l.SetLabelAt(10, "x"))
	require.NoError(t, l.SetLabelAt(1, "x"))
	require.Equal(t, "x", l.CoordinateLabels()[1])
}

func TestLabeledRoundTripViaDictionary(t *testing.T) {
	l, err := NewLabeled([]string{"alpha", "beta", "gamma"})
	require.NoError(t, err)
	l.SetLabel("phase")
	l.SetDescription("categorical axis")

	d := l.ToDictionary()
	back, err := LabeledFromDictionary(d)
	require.NoError(t, err)
	require.Equal(t, l.CoordinateLabels(), back.CoordinateLabels())
	require.Equal(t, l.Label(), back.Label())
	require.Equal(t, l.Description(), back.Description())
}

func TestDimensionFromDictionaryDispatchesOnType(t *testing.T) {
	l, err := NewLabeled([]string{"a", "b"})
	require.NoError(t, err)
	d, err := FromDictionary(l.ToDictionary())
	require.NoError(t, err)
	require.Equal(t, KindLabeled, d.Kind())
}

func TestFromDictionaryUnknownKindErrors(t *testing.T) {
	l, err := NewLabeled([]string{"a", "b"})
	require.NoError(t, err)
	d := l.ToDictionary()
	d.Set("type", value.FromString("bogus"))
	_, err = FromDictionary(d)
	require.Error(t, err)
}

func TestFromDictionaryMissingTypeErrors(t *testing.T) {
	_, err := FromDictionary(value.NewMapping())
	require.Error(t, err)
}

func TestNewSIRejectsDimensionalityMismatch(t *testing.T) {
	meters, err := unit.ParseUnit("m")
	require.NoError(t, err)
	_, err = NewSI("time", seconds(t, 0), unit.NewScalar(1.0, meters), unit.Scalar{})
	require.Error(t, err)
}

func TestNewSILinearRequiresCountAtLeast2(t *testing.T) {
	_, err := NewSILinear("time", 1, seconds(t, 1.0), unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.Error(t, err)
}

// TestProperty7SILinearRoundTrip covers §8 round-trip law 7: from_dictionary
// (to_dictionary(d)) == d, for an SILinear dimension.
func TestProperty7SILinearRoundTrip(t *testing.T) {
	l, err := NewSILinear("time", 4, seconds(t, 1.0), unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.NoError(t, err)
	l.SetLabel("t1")

	d := l.ToDictionary()
	back, err := LinearFromDictionary(d)
	require.NoError(t, err)
	require.Equal(t, l.Count(), back.Count())
	require.Equal(t, l.Increment().Value, back.Increment().Value)
	require.Equal(t, l.Increment().Unit.Symbol, back.Increment().Unit.Symbol)
	require.Equal(t, l.Label(), back.Label())
}

func TestSILinearCoordinateAtUsesOffsetsAndIncrement(t *testing.T) {
	l, err := NewSILinear("time", 4, seconds(t, 1.0), seconds(t, 0), seconds(t, 0), unit.Scalar{})
	require.NoError(t, err)
	c, err := l.CoordinateAt(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, c.Value)
}

func TestSILinearReciprocalIncrement(t *testing.T) {
	l, err := NewSILinear("time", 4, seconds(t, 2.0), unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.NoError(t, err)
	recip := l.ReciprocalIncrement()
	require.InDelta(t, 1.0/8.0, recip.Value, 1e-12)
}

func TestSIMonotonicRejectsNonMonotone(t *testing.T) {
	coords := []unit.Scalar{seconds(t, 1), seconds(t, 3), seconds(t, 2)}
	_, err := NewSIMonotonic("time", coords, unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.ErrorIs(t, err, errs.ErrNonMonotonicCoordinates)
}

func TestSIMonotonicAcceptsDecreasing(t *testing.T) {
	coords := []unit.Scalar{seconds(t, 3), seconds(t, 2), seconds(t, 1)}
	_, err := NewSIMonotonic("time", coords, unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.NoError(t, err)
}

// TestProperty7SIMonotonicRoundTrip covers round-trip law 7 for SIMonotonic.
func TestProperty7SIMonotonicRoundTrip(t *testing.T) {
	coords := []unit.Scalar{seconds(t, 1), seconds(t, 2), seconds(t, 4)}
	m, err := NewSIMonotonic("time", coords, unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	require.NoError(t, err)

	d := m.ToDictionary()
	back, err := MonotonicFromDictionary(d)
	require.NoError(t, err)
	require.Equal(t, m.Count(), back.Count())
	for i, c := range m.Coordinates() {
		require.Equal(t, c.Value, back.Coordinates()[i].Value)
	}
}

func TestDimensionCloneIsIndependent(t *testing.T) {
	l, err := NewLabeled([]string{"a", "b"})
	require.NoError(t, err)
	clone := l.Clone().(*Labeled)
	require.NoError(t, l.SetLabelAt(0, "z"))
	require.Equal(t, "a", clone.CoordinateLabels()[0], "clone must not observe mutation of the original")
}
