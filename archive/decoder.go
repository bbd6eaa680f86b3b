package archive

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/phystat/compress"
	"github.com/arloliu/phystat/endian"
	"github.com/arloliu/phystat/errs"
	"github.com/arloliu/phystat/fit"
	"github.com/arloliu/phystat/format"
	"github.com/arloliu/phystat/stat"
)

// Decoder reads a sample archive. It validates the header and index once
// at construction and is read-only afterwards, so it is safe for
// concurrent use.
type Decoder struct {
	engine  endian.EndianEngine
	ids     []uint64
	index   map[uint64]indexEntry
	payload []byte
}

// NewDecoder parses an archive produced by an Encoder.
//
// The byte order is detected from the magic number, the payload is
// decompressed eagerly, and every index entry is bounds-checked against the
// declared payload length.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	engine, err := detectEngine(data)
	if err != nil {
		return nil, err
	}

	compression := format.CompressionType(data[2])
	count := engine.Uint32(data[4:8])
	payloadOffset := engine.Uint32(data[8:12])
	payloadLen := engine.Uint32(data[12:16])

	// Widen before multiplying; a crafted count must not wrap the offset
	// arithmetic back into range.
	wantOffset := uint64(HeaderSize) + uint64(count)*IndexEntrySize
	if uint64(payloadOffset) != wantOffset || int(payloadOffset) > len(data) {
		return nil, fmt.Errorf("%w: payload offset %d, want %d", errs.ErrInvalidIndexEntry, payloadOffset, wantOffset)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[payloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	if len(payload) != int(payloadLen) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrInvalidPayloadBounds, len(payload), payloadLen)
	}

	d := &Decoder{
		engine:  engine,
		ids:     make([]uint64, 0, count),
		index:   make(map[uint64]indexEntry, count),
		payload: payload,
	}

	for i := range int(count) {
		entryOffset := HeaderSize + i*IndexEntrySize
		entry := indexEntry{
			id:     engine.Uint64(data[entryOffset : entryOffset+8]),
			count:  engine.Uint32(data[entryOffset+8 : entryOffset+12]),
			offset: engine.Uint32(data[entryOffset+12 : entryOffset+16]),
		}
		end := uint64(entry.offset) + uint64(entry.count)*8
		if entry.count == 0 || end > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: sample %#x spans [%d, %d) of %d-byte payload",
				errs.ErrInvalidPayloadBounds, entry.id, entry.offset, end, len(payload))
		}
		if _, dup := d.index[entry.id]; dup {
			return nil, fmt.Errorf("%w: sample %#x", errs.ErrDuplicateSample, entry.id)
		}

		d.ids = append(d.ids, entry.id)
		d.index[entry.id] = entry
	}

	return d, nil
}

// detectEngine identifies the archive byte order from the flags field. The
// magic number is asymmetric, so exactly one byte order yields a match,
// and the endianness bit must agree with it.
func detectEngine(data []byte) (endian.EndianEngine, error) {
	le := binary.LittleEndian.Uint16(data[0:2])
	if le&MagicNumberMask == MagicSampleV1 && le&EndiannessMask == 0 {
		return endian.GetLittleEndianEngine(), nil
	}

	be := binary.BigEndian.Uint16(data[0:2])
	if be&MagicNumberMask == MagicSampleV1 && be&EndiannessMask != 0 {
		return endian.GetBigEndianEngine(), nil
	}

	return nil, fmt.Errorf("%w: %#04x", errs.ErrInvalidMagicNumber, le)
}

// SampleIDs returns the sample IDs in encoding order.
func (d *Decoder) SampleIDs() []uint64 {
	ids := make([]uint64, len(d.ids))
	copy(ids, d.ids)

	return ids
}

// Len returns the number of values stored for the sample, or 0 if the ID
// is unknown.
func (d *Decoder) Len(id uint64) int {
	return int(d.index[id].count)
}

// Sample returns a copy of the stored values for the sample ID.
func (d *Decoder) Sample(id uint64) ([]float64, bool) {
	entry, ok := d.index[id]
	if !ok {
		return nil, false
	}

	values := make([]float64, entry.count)
	for i := range values {
		start := int(entry.offset) + i*8
		values[i] = math.Float64frombits(d.engine.Uint64(d.payload[start : start+8]))
	}

	return values, true
}

// MeanStd reduces a stored sample to its mean and uncertainty budget for
// an instrument tolerance delta. Equivalent to stat.MeanStd on the
// decoded slice.
func (d *Decoder) MeanStd(id uint64, delta float64) (stat.Measurement, error) {
	sample, ok := d.Sample(id)
	if !ok {
		return stat.Measurement{}, fmt.Errorf("sample %#x not found in archive", id)
	}

	return stat.MeanStd(sample, delta)
}

// Linear fits a least-squares line through two stored samples, treating
// xID as the independent variable and yID as the dependent one. Equivalent
// to fit.Linear on the decoded slices.
func (d *Decoder) Linear(xID, yID uint64, yDelta float64) (*fit.Result, error) {
	x, ok := d.Sample(xID)
	if !ok {
		return nil, fmt.Errorf("sample %#x not found in archive", xID)
	}
	y, ok := d.Sample(yID)
	if !ok {
		return nil, fmt.Errorf("sample %#x not found in archive", yID)
	}

	return fit.Linear(x, y, yDelta)
}
