// Package compress implements the optional codecs CSDM's external .csdfe
// side files can be stored under. A side file is a flat dump of a
// DependentVariable's component bytes; compressing it is worthwhile for
// large grids (images, multi-GB spectra) but must stay optional since
// §6.1's default layout is plain raw bytes.
package compress

import "fmt"

// CompressionType names a side-file codec. The codec is not recorded in the
// .csdfe JSON document; a reader passes the same choice to serialize.Import.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses an external side file's raw bytes before they are
// written to disk.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor inverts Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; every built-in compressor implements it.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for compressionType.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("unsupported side-file compression type: %s", compressionType)
}
