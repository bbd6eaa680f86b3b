package stat

import (
	"fmt"
	"math"

	"github.com/arloliu/phystat/errs"
)

// Budget holds the three uncertainty components of a measured mean.
//
// Field order mirrors the conventional (Type-A, Type-B, combined) triple
// and is part of the package contract.
type Budget struct {
	// TypeA is the statistical uncertainty (standard error of the mean).
	TypeA float64
	// TypeB is the instrumental uncertainty (tolerance / sqrt(3)).
	TypeB float64
	// Combined is the quadrature sum sqrt(TypeA² + TypeB²).
	Combined float64
}

// Measurement summarizes a sample: its mean plus the full uncertainty budget.
//
// Field order mirrors the conventional (mean, Type-A, Type-B, combined)
// quadruple and is part of the package contract.
type Measurement struct {
	// Mean is the arithmetic average of the sample.
	Mean float64
	Budget
}

// String renders the measurement as "mean ± combined (A=..., B=...)".
func (m Measurement) String() string {
	return fmt.Sprintf("%g ± %g (A=%g, B=%g)", m.Mean, m.Combined, m.TypeA, m.TypeB)
}

// Mean returns the arithmetic mean of sample, or 0 for an empty sample.
func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range sample {
		sum += v
	}

	return sum / float64(len(sample))
}

// StdDev returns the sample standard deviation using Bessel's correction
// (sum of squared deviations divided by n-1).
//
// Returns errs.ErrInsufficientData when the sample has fewer than 2 points.
func StdDev(sample []float64) (float64, error) {
	n := len(sample)
	if n < 2 {
		return 0, fmt.Errorf("%w: standard deviation needs at least 2 points, got %d", errs.ErrInsufficientData, n)
	}

	mean := Mean(sample)
	sumSq := 0.0
	for _, v := range sample {
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(n-1)), nil
}

// TypeA returns the Type-A (statistical) uncertainty of the sample mean:
// the Bessel-corrected standard deviation divided by sqrt(n).
//
// Returns errs.ErrInsufficientData when the sample has fewer than 2 points.
func TypeA(sample []float64) (float64, error) {
	stddev, err := StdDev(sample)
	if err != nil {
		return 0, err
	}

	return stddev / math.Sqrt(float64(len(sample))), nil
}

// TypeB returns the Type-B (instrumental) uncertainty for an instrument
// with maximum absolute error delta, assuming the error is uniformly
// distributed over [-delta, delta]: delta / sqrt(3).
func TypeB(delta float64) float64 {
	return delta / math.Sqrt(3)
}

// Combined computes the full uncertainty budget of the sample mean for an
// instrument tolerance delta.
//
// The Type-A error from an undersized sample propagates unchanged; a
// negative delta returns errs.ErrNegativeTolerance.
func Combined(sample []float64, delta float64) (Budget, error) {
	if delta < 0 {
		return Budget{}, fmt.Errorf("%w: %g", errs.ErrNegativeTolerance, delta)
	}

	typeA, err := TypeA(sample)
	if err != nil {
		return Budget{}, err
	}

	typeB := TypeB(delta)

	return Budget{
		TypeA:    typeA,
		TypeB:    typeB,
		Combined: math.Sqrt(typeA*typeA + typeB*typeB),
	}, nil
}

// MeanStd returns the sample mean together with its uncertainty budget.
//
// This is the usual entry point for reducing a column of repeated
// measurements to a reportable value. Validation is delegated to Combined;
// no additional checks are performed.
func MeanStd(sample []float64, delta float64) (Measurement, error) {
	budget, err := Combined(sample, delta)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		Mean:   Mean(sample),
		Budget: budget,
	}, nil
}
