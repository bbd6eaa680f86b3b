package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/phystat/errs"
	"github.com/arloliu/phystat/format"
)

// samplePayload builds a payload shaped like a real archive: consecutive
// little-endian float64 measurement values.
func samplePayload(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := range n {
		v := 9.8 + 0.001*float64(i%50)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	payload := samplePayload(1000)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCodecCompressesRepetitiveData(t *testing.T) {
	// Repetitive float64 runs must shrink under every real codec.
	payload := samplePayload(4096)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestNoOpSharesMemory(t *testing.T) {
	codec := NewNoOpCodec()
	payload := samplePayload(8)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}
