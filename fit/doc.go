// Package fit performs ordinary least-squares linear regression with full
// uncertainty propagation for both fitted parameters.
//
// The fit follows the method of moments: with x̄, ȳ the sample means and
//
//	Sxy = mean(x·y) − x̄·ȳ
//	Sxx = mean(x²) − x̄²
//	Syy = mean(y²) − ȳ²
//
// the line y = a + b·x has slope b = Sxy/Sxx, intercept a = ȳ − b·x̄ and
// Pearson correlation r = Sxy / sqrt(Sxx·Syy).
//
// Uncertainties use the laboratory convention that expresses the residual
// variance through r:
//
//	b_UA = b · sqrt((1/r² − 1) / (n − 2))   (statistical)
//	b_UB = (Δy/sqrt(3)) / sqrt(n·Sxx)       (instrumental)
//	a_U* = b_U* · sqrt(mean(x²))
//
// with Type-A and Type-B components combined in quadrature.
//
// # Example
//
//	res, err := fit.Linear(periods, lengths, 0.001)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res)                    // y = 0.05 + 1.99*x (r=0.9987)
//	fmt.Println(res.Estimate(2.5))      // interpolated ŷ
package fit
