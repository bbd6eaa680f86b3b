// Package compress provides the payload codecs used by the phystat archive.
//
// An archive stores raw little- or big-endian float64 measurement values;
// compression is applied to the whole payload after encoding. Four
// algorithms are supported:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fast decompression, moderate ratio
//
// Measurement payloads are small (a lab session is rarely more than a few
// thousand float64 values), so every codec favors simple one-shot
// Compress/Decompress calls over streaming.
//
// All codecs are safe for concurrent use; stateful implementations pool
// their encoder/decoder state internally.
package compress
