package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/phystat/errs"
)

// Result holds the fitted line and the propagated uncertainties of both
// parameters.
//
// Field order mirrors the conventional report order
// (b, a, r, a_UA, b_UA, a_UB, b_UB, a_U, b_U) and is part of the package
// contract.
type Result struct {
	// Slope is the least-squares slope b.
	Slope float64
	// Intercept is the least-squares intercept a.
	Intercept float64
	// R is the Pearson correlation coefficient between x and y.
	R float64
	// InterceptTypeA is the statistical uncertainty of the intercept.
	InterceptTypeA float64
	// SlopeTypeA is the statistical uncertainty of the slope.
	SlopeTypeA float64
	// InterceptTypeB is the instrumental uncertainty of the intercept.
	InterceptTypeB float64
	// SlopeTypeB is the instrumental uncertainty of the slope.
	SlopeTypeB float64
	// InterceptCombined is the quadrature sum of the intercept uncertainties.
	InterceptCombined float64
	// SlopeCombined is the quadrature sum of the slope uncertainties.
	SlopeCombined float64
}

// Estimate returns the fitted value ŷ = a + b·x.
func (r *Result) Estimate(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// String renders the fitted line with its correlation coefficient.
func (r *Result) String() string {
	return fmt.Sprintf("y = %.4g + %.4g*x (r=%.4f)", r.Intercept, r.Slope, r.R)
}

// Linear fits y = a + b·x by ordinary least squares and propagates both the
// statistical (Type-A) and instrumental (Type-B) uncertainties into the
// slope and intercept. yDelta is the maximum absolute error of the
// instrument measuring y, assumed uniform over [-yDelta, yDelta].
//
// Preconditions:
//   - len(x) == len(y), else errs.ErrLengthMismatch
//   - n >= 3, else errs.ErrInsufficientData (the n-2 degrees-of-freedom
//     term in the slope uncertainty would otherwise divide by zero)
//   - x not constant, else errs.ErrZeroVariance
//   - yDelta >= 0, else errs.ErrNegativeTolerance
//
// A constant y sample is not guarded: it makes the correlation coefficient
// 0/0 and the resulting NaN propagates per IEEE-754 into R and the Type-A
// terms, while the slope (0) and intercept (ȳ) stay exact.
func Linear(x, y []float64, yDelta float64) (*Result, error) {
	n := len(x)
	if n != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, n, len(y))
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: linear fit needs at least 3 points, got %d", errs.ErrInsufficientData, n)
	}
	if yDelta < 0 {
		return nil, fmt.Errorf("%w: %g", errs.ErrNegativeTolerance, yDelta)
	}

	// Single pass over the paired sample accumulating the raw moments.
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range n {
		xi := x[i]
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumXX += xi * xi
		sumYY += yi * yi
	}

	fn := float64(n)
	meanX := sumX / fn
	meanY := sumY / fn
	meanXY := sumXY / fn
	meanXX := sumXX / fn
	meanYY := sumYY / fn

	sxy := meanXY - meanX*meanY
	sxx := meanXX - meanX*meanX
	syy := meanYY - meanY*meanY

	if sxx == 0 {
		return nil, fmt.Errorf("%w: all x values equal %g", errs.ErrZeroVariance, meanX)
	}

	b := sxy / sxx
	a := meanY - b*meanX
	r := sxy / math.Sqrt(sxx*syy)

	// Residual variance expressed via r; exactly zero for a perfect fit.
	yUB := yDelta / math.Sqrt(3)
	bUA := b * math.Sqrt((1/(r*r)-1)/float64(n-2))
	aUA := bUA * math.Sqrt(meanXX)
	bUB := yUB / math.Sqrt(fn*sxx)
	aUB := bUB * math.Sqrt(meanXX)

	return &Result{
		Slope:             b,
		Intercept:         a,
		R:                 r,
		InterceptTypeA:    aUA,
		SlopeTypeA:        bUA,
		InterceptTypeB:    aUB,
		SlopeTypeB:        bUB,
		InterceptCombined: math.Sqrt(aUA*aUA + aUB*aUB),
		SlopeCombined:     math.Sqrt(bUA*bUA + bUB*bUB),
	}, nil
}
