// Package archive implements a compact binary container for named
// measurement samples, so a lab session's raw series can be kept next to
// its reduced statistics.
//
// An archive is a single byte slice with three sections:
//
//	┌────────────┬───────────────────┬─────────────────────────┐
//	│ header 16B │ index 16B/sample  │ float64 payload         │
//	└────────────┴───────────────────┴─────────────────────────┘
//
// Samples are identified by the xxHash64 of their name, the index maps each
// ID to its offset and count inside the payload, and the whole payload can
// be compressed (None, Zstd, S2, LZ4). Byte order is selectable per archive
// and detected automatically on decode.
//
// The package does no I/O: encoding produces bytes, decoding consumes them,
// and callers decide where the bytes live.
//
// # Encoding
//
//	enc, err := archive.NewEncoder(archive.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc.AddSample("pendulum.period", periods)
//	enc.AddSample("pendulum.length", lengths)
//	data, err := enc.Finish()
//
// # Decoding and reduction
//
//	dec, err := archive.NewDecoder(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := dec.MeanStd(archive.SampleID("pendulum.period"), 0.001)
//	res, err := dec.Linear(
//	    archive.SampleID("pendulum.length"),
//	    archive.SampleID("pendulum.period"),
//	    0.001,
//	)
package archive
