package archive

import (
	"fmt"
	"math"

	"github.com/arloliu/phystat/compress"
	"github.com/arloliu/phystat/endian"
	"github.com/arloliu/phystat/errs"
	"github.com/arloliu/phystat/format"
	"github.com/arloliu/phystat/internal/options"
)

// Encoder builds a sample archive. Add samples one by one, then call
// Finish to obtain the encoded bytes.
//
// An Encoder is single-use and not safe for concurrent use; encode from
// one goroutine and share the resulting bytes instead.
type Encoder struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	samples     []pendingSample
	seen        map[uint64]struct{}
	valueCount  int
}

type pendingSample struct {
	id     uint64
	values []float64
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression. Default is
// format.CompressionNone; lab payloads are usually small enough that
// compression is a retention choice, not a necessity.
func WithCompression(compressionType format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(compressionType); err != nil {
			return err
		}
		e.compression = compressionType

		return nil
	})
}

// WithLittleEndian selects little-endian byte order (the default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian selects big-endian byte order, for interoperability with
// big-endian consumers.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.GetBigEndianEngine()
	})
}

// NewEncoder creates an archive encoder.
//
// Returns an error if any option is invalid.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
		seen:        make(map[uint64]struct{}),
	}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// AddSample adds a named measurement sample. The sample is identified by
// the xxHash64 of name; see SampleID.
//
// Returns errs.ErrEmptySample for a zero-length sample and
// errs.ErrDuplicateSample when the name's ID was already added.
func (e *Encoder) AddSample(name string, values []float64) error {
	return e.AddSampleID(SampleID(name), values)
}

// AddSampleID adds a sample under a caller-chosen 64-bit ID. Use this when
// the application already keys its series by unsigned IDs.
//
// The values slice is not copied until Finish; callers must not mutate it
// before then.
func (e *Encoder) AddSampleID(id uint64, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: sample %#x", errs.ErrEmptySample, id)
	}
	if _, dup := e.seen[id]; dup {
		return fmt.Errorf("%w: sample %#x", errs.ErrDuplicateSample, id)
	}

	e.seen[id] = struct{}{}
	e.samples = append(e.samples, pendingSample{id: id, values: values})
	e.valueCount += len(values)

	return nil
}

// Finish assembles the archive and returns its bytes. The encoder must
// have at least one sample.
func (e *Encoder) Finish() ([]byte, error) {
	if len(e.samples) == 0 {
		return nil, fmt.Errorf("%w: archive has no samples", errs.ErrEmptySample)
	}

	// The header stores counts, offsets and lengths as uint32; refuse to
	// narrow anything that would not round-trip.
	totalSize := uint64(HeaderSize) + uint64(len(e.samples))*IndexEntrySize + uint64(e.valueCount)*8
	if totalSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d samples, %d values", errs.ErrArchiveTooLarge, len(e.samples), e.valueCount)
	}

	// Raw payload: each sample's float64 bits, back to back.
	payload := make([]byte, 0, e.valueCount*8)
	index := make([]indexEntry, 0, len(e.samples))
	for _, s := range e.samples {
		index = append(index, indexEntry{
			id:     s.id,
			count:  uint32(len(s.values)),
			offset: uint32(len(payload)),
		})
		for _, v := range s.values {
			payload = e.engine.AppendUint64(payload, math.Float64bits(v))
		}
	}

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	flags := uint16(MagicSampleV1)
	if e.engine == endian.GetBigEndianEngine() {
		flags |= EndiannessMask
	}

	payloadOffset := HeaderSize + len(index)*IndexEntrySize

	buf := make([]byte, 0, payloadOffset+len(compressed))
	buf = e.engine.AppendUint16(buf, flags)
	buf = append(buf, byte(e.compression), 0)
	buf = e.engine.AppendUint32(buf, uint32(len(index)))
	buf = e.engine.AppendUint32(buf, uint32(payloadOffset))
	buf = e.engine.AppendUint32(buf, uint32(len(payload)))

	for _, entry := range index {
		buf = e.engine.AppendUint64(buf, entry.id)
		buf = e.engine.AppendUint32(buf, entry.count)
		buf = e.engine.AppendUint32(buf, entry.offset)
	}

	return append(buf, compressed...), nil
}
