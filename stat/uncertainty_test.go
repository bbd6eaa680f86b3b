package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/phystat/errs"
)

const tolerance = 1e-9

// Golden values computed once with reference double-precision arithmetic
// for the pendulum-style sample {9.8 .. 10.2} with delta = 0.05.
var (
	goldenSample = []float64{9.8, 9.9, 10.0, 10.1, 10.2}
	goldenDelta  = 0.05
)

const (
	goldenMean     = 10.0
	goldenStdDev   = 0.1581138830084184
	goldenTypeA    = 0.07071067811865449
	goldenTypeB    = 0.02886751345948129
	goldenCombined = 0.0763762615825971
)

func TestMean(t *testing.T) {
	require.InDelta(t, goldenMean, Mean(goldenSample), tolerance)
	require.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), tolerance)
	require.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	sd, err := StdDev(goldenSample)
	require.NoError(t, err)
	require.InDelta(t, goldenStdDev, sd, tolerance)
}

func TestStdDevInsufficientData(t *testing.T) {
	for _, sample := range [][]float64{nil, {}, {1.0}} {
		_, err := StdDev(sample)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	}
}

func TestTypeA(t *testing.T) {
	t.Run("golden sample", func(t *testing.T) {
		ua, err := TypeA(goldenSample)
		require.NoError(t, err)
		require.InDelta(t, goldenTypeA, ua, tolerance)
	})

	t.Run("constant sample is exactly zero", func(t *testing.T) {
		ua, err := TypeA([]float64{4.2, 4.2, 4.2, 4.2})
		require.NoError(t, err)
		require.Equal(t, 0.0, ua)
	})

	t.Run("always non-negative", func(t *testing.T) {
		samples := [][]float64{
			{-5, -3, -1},
			{1e-9, 2e-9},
			{100, -100, 50, -50},
		}
		for _, sample := range samples {
			ua, err := TypeA(sample)
			require.NoError(t, err)
			require.GreaterOrEqual(t, ua, 0.0)
		}
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := TypeA([]float64{1.0})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestTypeB(t *testing.T) {
	require.InDelta(t, goldenTypeB, TypeB(goldenDelta), tolerance)
	require.Equal(t, 0.0, TypeB(0))
}

func TestCombined(t *testing.T) {
	budget, err := Combined(goldenSample, goldenDelta)
	require.NoError(t, err)
	require.InDelta(t, goldenTypeA, budget.TypeA, tolerance)
	require.InDelta(t, goldenTypeB, budget.TypeB, tolerance)
	require.InDelta(t, goldenCombined, budget.Combined, tolerance)

	// Quadrature sum dominates each component.
	require.GreaterOrEqual(t, budget.Combined, budget.TypeA)
	require.GreaterOrEqual(t, budget.Combined, budget.TypeB)
}

func TestCombinedQuadratureProperty(t *testing.T) {
	// The property must hold across a spread of samples and tolerances.
	samples := [][]float64{
		{1, 2},
		{0.001, 0.002, 0.003},
		{-10, 0, 10, 20},
		{3.3, 3.3, 3.3},
	}
	deltas := []float64{0, 0.01, 0.5, 2}

	for _, sample := range samples {
		for _, delta := range deltas {
			budget, err := Combined(sample, delta)
			require.NoError(t, err)
			require.GreaterOrEqual(t, budget.Combined, budget.TypeA)
			require.GreaterOrEqual(t, budget.Combined, budget.TypeB)
		}
	}
}

func TestCombinedErrors(t *testing.T) {
	_, err := Combined([]float64{1.0}, 0.1)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Combined(goldenSample, -0.1)
	require.ErrorIs(t, err, errs.ErrNegativeTolerance)
}

func TestMeanStd(t *testing.T) {
	m, err := MeanStd(goldenSample, goldenDelta)
	require.NoError(t, err)

	require.InDelta(t, goldenMean, m.Mean, tolerance)
	require.InDelta(t, goldenTypeA, m.TypeA, tolerance)
	require.InDelta(t, goldenTypeB, m.TypeB, tolerance)
	require.InDelta(t, goldenCombined, m.Combined, tolerance)

	// The mean component must match an independently computed average.
	sum := 0.0
	for _, v := range goldenSample {
		sum += v
	}
	require.InDelta(t, sum/float64(len(goldenSample)), m.Mean, tolerance)
}

func TestMeanStdPropagatesErrors(t *testing.T) {
	_, err := MeanStd([]float64{42}, 0.1)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestIdempotence(t *testing.T) {
	// Pure functions: repeated calls on identical input are bit-identical.
	first, err := MeanStd(goldenSample, goldenDelta)
	require.NoError(t, err)
	second, err := MeanStd(goldenSample, goldenDelta)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMeasurementString(t *testing.T) {
	m := Measurement{Mean: 10, Budget: Budget{TypeA: 0.07, TypeB: 0.03, Combined: math.Hypot(0.07, 0.03)}}
	require.Contains(t, m.String(), "10 ±")
}
