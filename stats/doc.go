// Package stats computes scalar descriptive statistics over a time series.
//
// Statistics operate on the values of a series and ignore timestamps, except
// for MinAt and MaxAt which report where the extremum occurs.
//
// # Basic Statistics
//
//	mean, err := stats.Mean(series)
//	variance, err := stats.Variance(series) // sample variance (Bessel)
//	std, err := stats.Std(series)
//	lo, err := stats.Min(series)
//	hi, err := stats.Max(series)
//
// Variance and Std require at least 2 observations; the remaining statistics
// require at least 1. Violations fail with timeseries.ErrInsufficientData.
//
// # Summaries
//
// Describe computes everything in one call:
//
//	summary, err := stats.Describe(series)
//	fmt.Println(summary.Count, summary.Mean, summary.Std)
//
// # Pairwise Statistics
//
// Cross-covariance and cross-correlation align two series on shared
// timestamps first:
//
//	cov, err := stats.Crosscovariance(a, b)
//	rho, err := stats.Crosscorrelation(a, b)
package stats
