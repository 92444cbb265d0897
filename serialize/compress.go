package serialize

import (
	"github.com/csdm-go/csdm/compress"
)

// SideFileCompression selects an optional codec for external .csdfe side
// files, an enrichment beyond §6.1's plain raw-bytes layout gated behind an
// explicit export option so default exports stay uncompressed. It maps
// directly onto compress.CompressionType, the same enum compress.GetCodec
// dispatches on.
type SideFileCompression int

const (
	CompressionNone SideFileCompression = iota
	CompressionZstd
	CompressionLZ4
)

func (c SideFileCompression) compressionType() compress.CompressionType {
	switch c {
	case CompressionZstd:
		return compress.CompressionZstd
	case CompressionLZ4:
		return compress.CompressionLZ4
	default:
		return compress.CompressionNone
	}
}

func compressSideFile(c SideFileCompression, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(c.compressionType())
	if err != nil {
		return nil, err
	}
	return codec.Compress(data)
}

func decompressSideFile(c SideFileCompression, data []byte, expectedSize int) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	codec, err := compress.GetCodec(c.compressionType())
	if err != nil {
		return nil, err
	}
	return codec.Decompress(data)
}
