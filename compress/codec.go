package compress

import (
	"fmt"

	"github.com/arloliu/phystat/errs"
	"github.com/arloliu/phystat/format"
)

// Compressor compresses an archive payload.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The input slice is never modified. Implementations may return the
	// input unchanged (the NoOp codec does); callers that need exclusive
	// ownership of the result must copy it. Internal buffers may be
	// reused across calls.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores an archive payload compressed with the matching
// algorithm. Implementations validate the input format and return an error
// for corrupted or incompatible data.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// The input slice is never modified. Implementations may return the
	// input unchanged (the NoOp codec does); callers that need exclusive
	// ownership of the result must copy it.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; every algorithm in this package
// implements it.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given compression type, or
// errs.ErrUnknownCompression for unrecognized values.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
