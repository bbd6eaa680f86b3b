package archive

import "github.com/arloliu/phystat/internal/hash"

const (
	// HeaderSize is the fixed archive header size in bytes.
	HeaderSize = 16
	// IndexEntrySize is the fixed per-sample index entry size in bytes.
	IndexEntrySize = 16

	// MagicSampleV1 is the version 1 magic number, stored in bits 4-15 of
	// the flags field.
	MagicSampleV1 = 0xEC10
	// MagicNumberMask extracts the magic number from the flags field.
	MagicNumberMask = 0xFFF0
	// EndiannessMask extracts the byte-order bit (0=little, 1=big).
	EndiannessMask = 0x0001
)

// Header layout (all fields written in the archive's byte order):
//
//	offset 0:  uint16 flags (magic + endianness bit)
//	offset 2:  uint8  compression type
//	offset 3:  uint8  reserved
//	offset 4:  uint32 sample count
//	offset 8:  uint32 payload offset (HeaderSize + count*IndexEntrySize)
//	offset 12: uint32 uncompressed payload length in bytes
//
// Index entry layout:
//
//	offset 0:  uint64 sample ID (xxHash64 of the sample name)
//	offset 8:  uint32 value count
//	offset 12: uint32 byte offset into the uncompressed payload
type indexEntry struct {
	id     uint64
	count  uint32
	offset uint32
}

// SampleID converts a sample name to its 64-bit archive identifier.
//
// IDs are deterministic xxHash64 values, so encoders and decoders agree on
// them without shipping the names.
func SampleID(name string) uint64 {
	return hash.ID(name)
}
