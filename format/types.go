// Package format defines shared enums for the phystat archive container.
package format

// CompressionType selects the whole-payload compression of an archive.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd applies Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 applies S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 applies LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
