// Package endian provides byte-order detection and a narrow engine
// interface for the CSDM wire format, which pins little-endian for every
// on-disk representation (inline base64, inline numeric arrays, and
// external .csdfe side files) regardless of the host's native order.
//
// This follows github.com/arloliu/mebo/endian's EndianEngine pattern: the
// stdlib's encoding/binary.ByteOrder and AppendByteOrder are combined into
// one small interface so call sites can hold a single value instead of
// juggling two.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine combines the read/write and append byte-order operations.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the wire engine used for every CSDM on-disk buffer.
var LittleEndian Engine = binary.LittleEndian

// BigEndian is provided for completeness and for reading foreign files that
// declare big-endian layout explicitly; the CSDM core never writes it.
var BigEndian Engine = binary.BigEndian

// HostIsLittleEndian reports the running process's native byte order, used
// to decide whether host-native element views can be reinterpreted in place
// or must be byte-swapped before touching the wire.
func HostIsLittleEndian() bool {
	var probe uint16 = 0x0001
	b := (*[2]byte)(unsafe.Pointer(&probe))
	return b[0] == 0x01
}
