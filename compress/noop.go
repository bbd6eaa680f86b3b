package compress

// NoOpCodec passes payloads through unchanged. Useful as the default for
// small archives where compression overhead outweighs the savings, and as
// a baseline in benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that bypasses compression.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without copying.
//
// The result shares memory with the input; callers must not modify the
// input afterwards if they keep the returned slice.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
