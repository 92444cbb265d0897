package numeric

import (
	"math"
	"testing"

	"github.com/csdm-go/csdm/value"
	"github.com/stretchr/testify/require"
)

func TestTypeStringAndParseRoundTrip(t *testing.T) {
	for _, ty := range AllTypes() {
		name := ty.String()
		require.NotEqual(t, "unknown", name)
		parsed, err := ParseType(name)
		require.NoError(t, err)
		require.Equal(t, ty, parsed)
	}
}

func TestParseTypeUnknownErrors(t *testing.T) {
	_, err := ParseType("not-a-type")
	require.Error(t, err)
}

func TestIsComplexIsFloatIsInteger(t *testing.T) {
	require.True(t, C64.IsComplex())
	require.True(t, C128.IsComplex())
	require.False(t, F64.IsComplex())

	require.True(t, F64.IsFloat())
	require.True(t, C128.IsFloat())
	require.False(t, I32.IsFloat())
	require.True(t, I32.IsInteger())
}

func TestIsSigned(t *testing.T) {
	require.True(t, I32.IsSigned())
	require.False(t, U32.IsSigned())
}

func TestRealCounterpart(t *testing.T) {
	require.Equal(t, F32, C64.RealCounterpart())
	require.Equal(t, F64, C128.RealCounterpart())
	require.Equal(t, F64, F64.RealCounterpart())
}

func TestViewRoundTripsBytes(t *testing.T) {
	buf := make([]byte, 16)
	f := ViewF64(buf)
	f[0] = 1.5
	f[1] = -2.5
	require.Equal(t, 1.5, ViewF64(buf)[0])
	require.Equal(t, -2.5, ViewF64(buf)[1])
}

// TestProperty15NegativeOffsetWraps covers §8 boundary property 15: reading
// from memory offset -1 on a buffer of size S returns the element at S-1.
func TestProperty15NegativeOffsetWraps(t *testing.T) {
	buf := make([]byte, 4*8)
	for i := 0; i < 4; i++ {
		SetFloat64At(F64, buf, i, float64(i))
	}
	require.Equal(t, 3.0, Float64At(F64, buf, -1))
	require.Equal(t, 0.0, Float64At(F64, buf, 4))
}

func TestComplex128AtLiftsRealType(t *testing.T) {
	buf := make([]byte, 8)
	SetFloat64At(F64, buf, 0, 3.0)
	require.Equal(t, complex(3.0, 0), Complex128At(F64, buf, 0))
}

func TestPartAtOnRealType(t *testing.T) {
	buf := make([]byte, 8)
	SetFloat64At(F64, buf, 0, -5.0)
	require.Equal(t, -5.0, PartAt(F64, buf, 0, PartReal))
	require.Equal(t, 0.0, PartAt(F64, buf, 0, PartImag))
	require.Equal(t, -5.0, PartAt(F64, buf, 0, PartMagnitude))
}

func TestPartAtOnComplexType(t *testing.T) {
	buf := make([]byte, 16)
	SetComplex128At(C128, buf, 0, complex(3, 4))
	require.Equal(t, 3.0, PartAt(C128, buf, 0, PartReal))
	require.Equal(t, 4.0, PartAt(C128, buf, 0, PartImag))
	require.Equal(t, 5.0, PartAt(C128, buf, 0, PartMagnitude))
}

func TestConvertElementsIntToFloat(t *testing.T) {
	src := make([]byte, 4*4)
	for i := 0; i < 4; i++ {
		SetFloat64At(I32, src, i, float64(i+1))
	}
	dst := ConvertElements(I32, src, F64)
	require.Equal(t, []float64{1, 2, 3, 4}, ViewF64(dst))
}

func TestConvertElementsRealToComplexLiftsZeroImag(t *testing.T) {
	src := make([]byte, 8)
	SetFloat64At(F64, src, 0, 7.0)
	dst := ConvertElements(F64, src, C128)
	require.Equal(t, complex(7.0, 0), ViewC128(dst)[0])
}

func TestZeroAll(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	ZeroAll(buf)
	require.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestZeroPartInRangeFloat(t *testing.T) {
	buf := make([]byte, 4*8)
	for i := 0; i < 4; i++ {
		SetFloat64At(F64, buf, i, float64(i+1))
	}
	ZeroPartInRange(F64, buf, 1, 3, PartReal)
	require.Equal(t, []float64{1, 0, 0, 4}, ViewF64(buf))
}

func TestZeroPartInRangeComplexRealAndImag(t *testing.T) {
	buf := make([]byte, 16)
	SetComplex128At(C128, buf, 0, complex(3, 4))
	SetComplex128At(C128, buf, 1, complex(5, 6))
	ZeroPartInRange(C128, buf, 0, 2, PartReal)
	require.Equal(t, complex(0.0, 4.0), ViewC128(buf)[0])
	require.Equal(t, complex(0.0, 6.0), ViewC128(buf)[1])
}

// TestE3TakeAbsoluteValueDowngradesComplex covers scenario E3.
func TestE3TakeAbsoluteValueDowngradesComplex(t *testing.T) {
	buf := make([]byte, 3*16)
	SetComplex128At(C128, buf, 0, complex(1, 0))
	SetComplex128At(C128, buf, 1, complex(0, 1))
	SetComplex128At(C128, buf, 2, complex(-3, 4))

	newType, out := TakeAbsoluteValue(C128, buf)
	require.Equal(t, F64, newType)
	require.InDeltaSlice(t, []float64{1.0, 1.0, 5.0}, ViewF64(out), 1e-12)
}

func TestTakeAbsoluteValueRealInPlace(t *testing.T) {
	buf := make([]byte, 2*8)
	SetFloat64At(F64, buf, 0, -2.0)
	SetFloat64At(F64, buf, 1, 3.0)
	newType, out := TakeAbsoluteValue(F64, buf)
	require.Equal(t, F64, newType)
	require.Equal(t, []float64{2.0, 3.0}, ViewF64(out))
}

// TestProperty9TakeComplexPartIdempotentOnReal covers §8 idempotence
// property 9: take_complex_part(real) applied twice is identity.
func TestProperty9TakeComplexPartIdempotentOnReal(t *testing.T) {
	buf := make([]byte, 2*8)
	SetFloat64At(F64, buf, 0, -4.0)
	SetFloat64At(F64, buf, 1, 9.0)

	_, once := TakeComplexPart(F64, buf, PartReal)
	onceCopy := append([]byte(nil), once...)
	_, twice := TakeComplexPart(F64, onceCopy, PartReal)
	require.Equal(t, once, twice)
}

func TestProperty9TakeComplexPartMagnitudeIdempotentOnComplex(t *testing.T) {
	buf := make([]byte, 16)
	SetComplex128At(C128, buf, 0, complex(3, -4))
	_, once := TakeComplexPart(C128, buf, PartMagnitude)
	onceCopy := append([]byte(nil), once...)
	_, twice := TakeComplexPart(C128, onceCopy, PartMagnitude)
	require.Equal(t, once, twice)
}

// TestProperty10ConjugateIsInvolution covers §8 idempotence property 10:
// conjugate(conjugate(v)) == v.
func TestProperty10ConjugateIsInvolution(t *testing.T) {
	buf := make([]byte, 16)
	SetComplex128At(C128, buf, 0, complex(2, -5))
	original := append([]byte(nil), buf...)

	Conjugate(C128, buf)
	Conjugate(C128, buf)
	require.Equal(t, original, buf)
}

func TestConjugateNoOpOnReal(t *testing.T) {
	buf := make([]byte, 8)
	SetFloat64At(F64, buf, 0, 1.5)
	original := append([]byte(nil), buf...)
	Conjugate(F64, buf)
	require.Equal(t, original, buf)
}

// TestProperty11ZeroAllIdempotent covers §8 idempotence property 11:
// zero_all(zero_all(v)) == zero_all(v).
func TestProperty11ZeroAllIdempotent(t *testing.T) {
	buf := make([]byte, 4*8)
	for i := 0; i < 4; i++ {
		SetFloat64At(F64, buf, i, float64(i+1))
	}
	ZeroAll(buf)
	once := append([]byte(nil), buf...)
	ZeroAll(buf)
	require.Equal(t, once, buf)
}

func TestDowngradeComplexToReal(t *testing.T) {
	buf := make([]byte, 16)
	SetComplex128At(C128, buf, 0, complex(9, 0))
	newType, out := DowngradeComplexToReal(C128, buf)
	require.Equal(t, F64, newType)
	require.Equal(t, 9.0, ViewF64(out)[0])
}

func TestConvertToUnitScalesInPlace(t *testing.T) {
	buf := make([]byte, 8)
	SetFloat64At(F64, buf, 0, 2.0)
	ConvertToUnit(F64, buf, 10.0)
	require.Equal(t, 20.0, ViewF64(buf)[0])
}

func TestToLittleEndianIsStableAcrossRuns(t *testing.T) {
	buf := make([]byte, 8)
	SetFloat64At(F64, buf, 0, math.Pi)
	le := ToLittleEndian(F64, buf)
	back := FromLittleEndian(F64, le)
	require.Equal(t, buf, back)
}

// TestE2ComplexBase64RoundTrip covers scenario E2: a c64 DV, base64 encoding,
// components [[(1+2i),(3+4i),(5+6i)]], verifying the wire byte length and a
// GetDoubleComplexValueAtMemOffset-equivalent read.
func TestE2ComplexBase64RoundTrip(t *testing.T) {
	buf := make([]byte, 3*8)
	SetComplex128At(C64, buf, 0, complex(1, 2))
	SetComplex128At(C64, buf, 1, complex(3, 4))
	SetComplex128At(C64, buf, 2, complex(5, 6))

	encoded := ToBase64(C64, buf)
	decoded, err := FromBase64(C64, encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 24, "3 elements * 8 bytes per complex64")
	require.Equal(t, complex64(complex(3, 4)), ViewC64(decoded)[1])
}

func TestFromBase64RejectsBadPayload(t *testing.T) {
	_, err := FromBase64(F64, "not-base64!!")
	require.Error(t, err)

	_, err = FromBase64(F64, "AQID") // 3 bytes, not a multiple of 8
	require.Error(t, err)
}

func TestToNumberArrayAndFromNumberArrayRealRoundTrip(t *testing.T) {
	buf := make([]byte, 3*8)
	SetFloat64At(F64, buf, 0, 1.0)
	SetFloat64At(F64, buf, 1, 2.0)
	SetFloat64At(F64, buf, 2, 3.0)

	arr := ToNumberArray(F64, buf)
	require.Equal(t, 3, arr.Len())

	back, err := FromNumberArray(F64, arr)
	require.NoError(t, err)
	require.Equal(t, buf, back)
}

func TestToNumberArrayAndFromNumberArrayComplexRoundTrip(t *testing.T) {
	buf := make([]byte, 2*16)
	SetComplex128At(C128, buf, 0, complex(1, 2))
	SetComplex128At(C128, buf, 1, complex(3, 4))

	arr := ToNumberArray(C128, buf)
	require.Equal(t, 4, arr.Len(), "complex values flatten to alternating real/imag numbers")

	back, err := FromNumberArray(C128, arr)
	require.NoError(t, err)
	require.Equal(t, buf, back)
}

func TestFromNumberArrayRejectsNonNumeric(t *testing.T) {
	arr := value.NewArray(value.FromString("not a number"))
	_, err := FromNumberArray(F64, arr)
	require.Error(t, err)
}
