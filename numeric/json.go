package numeric

import (
	"encoding/base64"

	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/value"
)

// ToNumberArray decodes buf (host-native) per §4.6's encoding=none rule: a
// flat Array<Number> is built, with complex values emitted as alternating
// real/imag Numbers.
func ToNumberArray(t Type, buf []byte) *value.Array {
	n := ElementCount(t, buf)
	out := value.NewArray()
	if t.IsComplex() {
		for i := 0; i < n; i++ {
			z := Complex128At(t, buf, i)
			out.Append(value.FromNumber(value.Float(real(z))))
			out.Append(value.FromNumber(value.Float(imag(z))))
		}
		return out
	}
	for i := 0; i < n; i++ {
		if t.IsFloat() {
			out.Append(value.FromNumber(value.Float(Float64At(t, buf, i))))
		} else {
			out.Append(value.FromNumber(value.Int(int64(Float64At(t, buf, i)))))
		}
	}
	return out
}

// FromNumberArray packs a flat Array<Number> back into a host-native buffer
// of element type t. For complex types it consumes pairs of numbers; a
// nested [re, im] pair form is also accepted on input (an explicit decision
// recorded for the module's otherwise-unspecified input grammar), detected
// by each element being itself a 2-element Array.
func FromNumberArray(t Type, arr *value.Array) ([]byte, error) {
	if t.IsComplex() {
		return fromComplexNumberArray(t, arr)
	}

	n := arr.Len()
	out := make([]byte, n*t.ElementSize())
	for i := 0; i < n; i++ {
		num, err := arr.At(i).Number()
		if err != nil {
			return nil, &errs.DecodeError{Source: "components", Reason: "non-numeric element in inline component array"}
		}
		SetFloat64At(t, out, i, num.Float64())
	}
	return out, nil
}

func fromComplexNumberArray(t Type, arr *value.Array) ([]byte, error) {
	items := arr.Items()
	if len(items) > 0 {
		if nested, err := items[0].Array(); err == nil && nested.Len() == 2 {
			n := len(items)
			out := make([]byte, n*t.ElementSize())
			for i, v := range items {
				pair, err := v.Array()
				if err != nil || pair.Len() != 2 {
					return nil, &errs.DecodeError{Source: "components", Reason: "malformed [re, im] complex pair"}
				}
				re, err1 := pair.At(0).Number()
				im, err2 := pair.At(1).Number()
				if err1 != nil || err2 != nil {
					return nil, &errs.DecodeError{Source: "components", Reason: "non-numeric complex pair element"}
				}
				SetComplex128At(t, out, i, complex(re.Float64(), im.Float64()))
			}
			return out, nil
		}
	}

	if len(items)%2 != 0 {
		return nil, &errs.DecodeError{Source: "components", Reason: "flat complex number array must have even length"}
	}
	n := len(items) / 2
	out := make([]byte, n*t.ElementSize())
	for i := 0; i < n; i++ {
		re, err1 := items[2*i].Number()
		im, err2 := items[2*i+1].Number()
		if err1 != nil || err2 != nil {
			return nil, &errs.DecodeError{Source: "components", Reason: "non-numeric element in inline component array"}
		}
		SetComplex128At(t, out, i, complex(re.Float64(), im.Float64()))
	}
	return out, nil
}

// ToBase64 encodes buf's little-endian wire representation as a base64
// string.
func ToBase64(t Type, buf []byte) string {
	return base64.StdEncoding.EncodeToString(ToLittleEndian(t, buf))
}

// FromBase64 decodes a base64 string into a host-native buffer of type t.
func FromBase64(t Type, s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &errs.DecodeError{Source: "components", Reason: "invalid base64: " + err.Error()}
	}
	if t.ElementSize() > 0 && len(raw)%t.ElementSize() != 0 {
		return nil, &errs.DecodeError{Source: "components", Reason: "base64 payload length is not a multiple of the element size"}
	}
	return FromLittleEndian(t, raw), nil
}
