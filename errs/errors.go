// Package errs defines the sentinel errors shared across phystat packages.
//
// All errors are plain sentinel values intended for errors.Is comparison.
// Call sites wrap them with fmt.Errorf("...: %w", ...) to add context such
// as the offending lengths or offsets.
package errs

import "errors"

// Statistics errors.
var (
	// ErrInsufficientData indicates a sample with too few points for the
	// requested statistic: fewer than 2 points for a standard deviation,
	// fewer than 3 points for a linear fit (the n-2 degrees-of-freedom
	// term would otherwise divide by zero).
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrLengthMismatch indicates paired samples of different lengths.
	ErrLengthMismatch = errors.New("sample length mismatch")

	// ErrZeroVariance indicates a constant x sample in a linear fit; the
	// slope of a vertical scatter is undefined.
	ErrZeroVariance = errors.New("zero variance in x sample")

	// ErrNegativeTolerance indicates a negative instrument tolerance.
	ErrNegativeTolerance = errors.New("negative instrument tolerance")
)

// Archive errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid archive header size")
	ErrInvalidMagicNumber   = errors.New("invalid archive magic number")
	ErrInvalidIndexEntry    = errors.New("invalid archive index entry")
	ErrInvalidPayloadBounds = errors.New("archive payload bounds out of range")
	ErrDuplicateSample      = errors.New("duplicate sample name")
	ErrEmptySample          = errors.New("empty sample")
	ErrUnknownCompression   = errors.New("unknown compression type")
	ErrArchiveTooLarge      = errors.New("archive exceeds uint32 size limits")
)
