package phystat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/phystat/archive"
	"github.com/arloliu/phystat/errs"
)

const tolerance = 1e-9

func TestTypeAUncertainty(t *testing.T) {
	ua, err := TypeAUncertainty([]float64{9.8, 9.9, 10.0, 10.1, 10.2})
	require.NoError(t, err)
	require.InDelta(t, 0.07071067811865449, ua, tolerance)

	_, err = TypeAUncertainty([]float64{1})
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestUncertainty(t *testing.T) {
	budget, err := Uncertainty([]float64{9.8, 9.9, 10.0, 10.1, 10.2}, 0.05)
	require.NoError(t, err)
	require.InDelta(t, 0.0763762615825971, budget.Combined, tolerance)
}

func TestMeanStd(t *testing.T) {
	m, err := MeanStd([]float64{9.8, 9.9, 10.0, 10.1, 10.2}, 0.05)
	require.NoError(t, err)
	require.InDelta(t, 10.0, m.Mean, tolerance)
	require.InDelta(t, 0.02886751345948129, m.TypeB, tolerance)
}

func TestLinearFit(t *testing.T) {
	res, err := LinearFit([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 0)
	require.NoError(t, err)
	require.InDelta(t, 2.0, res.Slope, tolerance)
	require.InDelta(t, 1.0, res.R, tolerance)
}

func TestSampleID(t *testing.T) {
	require.Equal(t, archive.SampleID("pendulum.period"), SampleID("pendulum.period"))
	require.NotEqual(t, SampleID("a"), SampleID("b"))
}

// End-to-end: archive a session, decode it, reduce a sample.
func TestArchiveReduction(t *testing.T) {
	enc, err := archive.NewEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.AddSample("g", []float64{9.8, 9.9, 10.0, 10.1, 10.2}))

	data, err := enc.Finish()
	require.NoError(t, err)

	dec, err := archive.NewDecoder(data)
	require.NoError(t, err)

	m, err := dec.MeanStd(SampleID("g"), 0.05)
	require.NoError(t, err)

	want, err := MeanStd([]float64{9.8, 9.9, 10.0, 10.1, 10.2}, 0.05)
	require.NoError(t, err)
	require.Equal(t, want, m)
}
