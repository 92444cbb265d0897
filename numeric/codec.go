package numeric

import "github.com/csdm-go/csdm/endian"

// ToLittleEndian returns buf re-encoded as little-endian wire bytes for
// element type t. When the host is already little-endian (the common case
// on x86/arm64) this returns a copy of buf unchanged; otherwise every
// element is byte-swapped. Used at the serializer boundary for "raw"
// encoding and external side files, which the module pins to little-endian
// regardless of host order.
func ToLittleEndian(t Type, buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	if endian.HostIsLittleEndian() {
		return out
	}
	swapInPlace(t, out)
	return out
}

// FromLittleEndian is the inverse of ToLittleEndian: it takes little-endian
// wire bytes and returns a host-native buffer.
func FromLittleEndian(t Type, buf []byte) []byte {
	return ToLittleEndian(t, buf) // byte-swap is its own inverse
}

func swapInPlace(t Type, buf []byte) {
	// Complex types are pairs of independent floats; each float's bytes
	// must be swapped on its own, not the whole 8/16-byte element.
	unit := t.ElementSize()
	if t.IsComplex() {
		unit /= 2
	}
	if unit <= 1 {
		return
	}
	for off := 0; off+unit <= len(buf); off += unit {
		word := buf[off : off+unit]
		for i, j := 0, unit-1; i < j; i, j = i+1, j-1 {
			word[i], word[j] = word[j], word[i]
		}
	}
}
