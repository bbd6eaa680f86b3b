// Package stat computes measurement uncertainty statistics for repeated
// physical measurements.
//
// The package follows the standard laboratory convention of splitting the
// uncertainty of a measured mean into two independent components:
//
//   - Type-A: the statistical component, estimated from the spread of
//     repeated measurements as the standard error of the mean
//     (sample standard deviation with Bessel's correction, divided by
//     sqrt(n)).
//   - Type-B: the instrumental component, derived from the instrument's
//     maximum absolute error delta under a uniform-distribution assumption
//     as delta / sqrt(3).
//
// The two components combine in quadrature:
//
//	u = sqrt(uA² + uB²)
//
// # Basic Usage
//
//	sample := []float64{9.8, 9.9, 10.0, 10.1, 10.2}
//
//	m, err := stat.MeanStd(sample, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("g = %.3f ± %.3f m/s²\n", m.Mean, m.Combined)
//
// All functions are pure: they read their input slices, mutate nothing,
// and are safe to call concurrently.
package stat
