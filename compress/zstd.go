package compress

// ZstdCodec provides Zstandard compression for archive payloads.
//
// Zstd gives the best compression ratio of the supported algorithms and is
// the right choice for long-term retention of lab sessions. Two
// implementations back the same type: the cgo build uses valyala/gozstd
// (libzstd bindings), the pure-Go build uses klauspost/compress/zstd.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
