// Package phystat computes measurement uncertainty statistics and
// least-squares linear fits with propagated error bounds, for
// physics-laboratory data reduction.
//
// The package splits the uncertainty of a repeated measurement into a
// statistical Type-A component (standard error of the mean, Bessel
// corrected) and an instrumental Type-B component (tolerance / sqrt(3),
// uniform-distribution assumption), combined in quadrature. Linear fits
// propagate both components into the slope and intercept through the
// correlation coefficient.
//
// # Basic Usage
//
// Reducing a column of repeated measurements:
//
//	import "github.com/arloliu/phystat"
//
//	g := []float64{9.8, 9.9, 10.0, 10.1, 10.2}
//	m, err := phystat.MeanStd(g, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("g = %.3f ± %.3f\n", m.Mean, m.Combined) // 10.000 ± 0.076
//
// Fitting a calibration line:
//
//	res, err := phystat.LinearFit(x, y, 0.001)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("b = %g ± %g\n", res.Slope, res.SlopeCombined)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stat and
// fit packages, which hold the formulas; the archive package stores named
// raw samples in a compact binary container next to their reduced
// statistics.
package phystat

import (
	"github.com/arloliu/phystat/fit"
	"github.com/arloliu/phystat/internal/hash"
	"github.com/arloliu/phystat/stat"
)

// TypeAUncertainty returns the Type-A (statistical) uncertainty of the
// sample mean. See stat.TypeA.
func TypeAUncertainty(sample []float64) (float64, error) {
	return stat.TypeA(sample)
}

// Uncertainty returns the full (Type-A, Type-B, combined) uncertainty
// budget of the sample mean for an instrument tolerance delta.
// See stat.Combined.
func Uncertainty(sample []float64, delta float64) (stat.Budget, error) {
	return stat.Combined(sample, delta)
}

// MeanStd returns the sample mean together with its uncertainty budget.
// See stat.MeanStd.
func MeanStd(sample []float64, delta float64) (stat.Measurement, error) {
	return stat.MeanStd(sample, delta)
}

// LinearFit fits y = a + b·x by least squares and propagates the Type-A
// and Type-B uncertainties of both parameters. yDelta is the maximum
// absolute error of the instrument measuring y. See fit.Linear.
func LinearFit(x, y []float64, yDelta float64) (*fit.Result, error) {
	return fit.Linear(x, y, yDelta)
}

// SampleID converts a sample name to its 64-bit archive identifier
// (xxHash64 of the name).
func SampleID(name string) uint64 {
	return hash.ID(name)
}
