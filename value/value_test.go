package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueAccessorsRoundTrip(t *testing.T) {
	require.Equal(t, KindString, FromString("x").Kind())
	s, err := FromString("x").String()
	require.NoError(t, err)
	require.Equal(t, "x", s)

	n, err := FromNumber(Int(3)).Number()
	require.NoError(t, err)
	require.Equal(t, int64(3), n.Int64())

	b, err := FromBool(true).Bool()
	require.NoError(t, err)
	require.True(t, b)

	require.True(t, Null().IsNull())
}

func TestValueWrongKindAccessorReturnsTypeMismatch(t *testing.T) {
	_, err := FromString("x").Number()
	require.Error(t, err)

	_, err = FromNumber(Int(1)).String()
	require.Error(t, err)

	_, err = FromBool(false).Array()
	require.Error(t, err)
}

func TestKindStringNamesEveryKind(t *testing.T) {
	for _, k := range []Kind{KindString, KindNumber, KindBoolean, KindArray, KindMapping, KindIndexPairSet, KindBytesBuffer, KindNull} {
		require.NotEqual(t, "unknown", k.String())
	}
}

func TestArrayAppendSetLen(t *testing.T) {
	a := NewArray(FromString("a"), FromString("b"))
	require.Equal(t, 2, a.Len())
	a.Append(FromString("c"))
	require.Equal(t, 3, a.Len())
	a.Set(0, FromString("z"))
	v, _ := a.At(0).String()
	require.Equal(t, "z", v)
}

func TestArrayCloneIsIndependent(t *testing.T) {
	inner := NewArray(FromNumber(Int(1)))
	outer := NewArray(FromArray(inner))
	clone := outer.Clone()

	inner.Append(FromNumber(Int(2)))
	clonedInner, err := clone.At(0).Array()
	require.NoError(t, err)
	require.Equal(t, 1, clonedInner.Len(), "clone must not observe mutation of the original nested array")
}

func TestArrayNilIsSafe(t *testing.T) {
	var a *Array
	require.Equal(t, 0, a.Len())
	require.Nil(t, a.Items())
	require.Nil(t, a.Clone())
}

func TestMappingPreservesInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("c", FromNumber(Int(3)))
	m.Set("a", FromNumber(Int(1)))
	m.Set("b", FromNumber(Int(2)))
	require.Equal(t, []string{"c", "a", "b"}, m.Keys())

	m.Set("a", FromNumber(Int(10)))
	require.Equal(t, []string{"c", "a", "b"}, m.Keys(), "re-setting an existing key must not move it")
}

func TestMappingDeleteRemovesKeyAndOrderEntry(t *testing.T) {
	m := NewMapping()
	m.Set("x", FromBool(true))
	m.Set("y", FromBool(false))
	m.Delete("x")
	require.False(t, m.Has("x"))
	require.Equal(t, []string{"y"}, m.Keys())
	require.Equal(t, 1, m.Len())
}

func TestMappingCloneIsIndependent(t *testing.T) {
	m := NewMapping()
	nested := NewMapping()
	nested.Set("inner", FromNumber(Int(1)))
	m.Set("nested", FromMapping(nested))

	clone := m.Clone()
	nested.Set("inner", FromNumber(Int(99)))

	clonedNestedV, ok := clone.Get("nested")
	require.True(t, ok)
	clonedNested, err := clonedNestedV.Mapping()
	require.NoError(t, err)

	gotV, ok := clonedNested.Get("inner")
	require.True(t, ok)
	num, err := gotV.Number()
	require.NoError(t, err)
	require.Equal(t, int64(1), num.Int64(), "clone must not observe mutation of the original nested mapping")
}

func TestNumberPreservesIntVsFloatTag(t *testing.T) {
	i := Int(7)
	require.False(t, i.IsFloat())
	require.Equal(t, "7", i.String())

	f := Float(7.5)
	require.True(t, f.IsFloat())
	require.Equal(t, "7.5", f.String())
	require.Equal(t, int64(7), f.Int64())
}

func TestBytesBufferOwnershipVsCopy(t *testing.T) {
	src := []byte{1, 2, 3}
	owned := NewBytesBuffer(src, false)
	src[0] = 99
	require.Equal(t, byte(99), owned.Bytes()[0], "non-copy construction shares the backing array")

	src2 := []byte{1, 2, 3}
	copied := NewBytesBuffer(src2, true)
	src2[0] = 99
	require.Equal(t, byte(1), copied.Bytes()[0], "copy construction must not observe later mutation of the source")
}

func TestBytesBufferResizeGrowAndShrink(t *testing.T) {
	b := NewBytesBuffer([]byte{1, 2, 3}, true)
	b.Resize(5)
	require.Equal(t, []byte{1, 2, 3, 0, 0}, b.Bytes())
	b.Resize(2)
	require.Equal(t, []byte{1, 2}, b.Bytes())
}

func TestBytesBufferNilIsSafe(t *testing.T) {
	var b *BytesBuffer
	require.Equal(t, 0, b.Len())
	require.Nil(t, b.Bytes())
	require.Nil(t, b.Clone())
}

func TestIndexPairSetSetReplacesExistingDim(t *testing.T) {
	s := NewIndexPairSet(IndexPair{DimIndex: 0, CoordIndex: 1}, IndexPair{DimIndex: 1, CoordIndex: 2})
	s.Set(0, 9)
	v, ok := s.Get(0)
	require.True(t, ok)
	require.Equal(t, 9, v)
	require.Equal(t, 2, s.Len(), "replacing an existing dim must not grow the set")
	require.Equal(t, []int{0, 1}, s.DimIndices())
}

func TestIndexPairSetGetMissingDim(t *testing.T) {
	s := NewIndexPairSet(IndexPair{DimIndex: 0, CoordIndex: 1})
	_, ok := s.Get(5)
	require.False(t, ok)
}

func TestIndexPairSetClone(t *testing.T) {
	s := NewIndexPairSet(IndexPair{DimIndex: 0, CoordIndex: 1})
	clone := s.Clone()
	s.Set(0, 100)
	v, ok := clone.Get(0)
	require.True(t, ok)
	require.Equal(t, 1, v, "clone must not observe later mutation of the original")
}
