package compress

// NoOpCompressor passes side-file bytes through unchanged. It is the
// default codec: most .csdfe exports never opt into compression, so the
// zero value of SideFileCompression must round-trip for free.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unmodified; callers must not mutate the result
// since it aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
