// Package filter produces derived time series via windowed transforms.
//
// Filters consume a series and return a new one; the source is never
// mutated, and outputs keep the ascending, unique-timestamp invariant.
//
// # Rolling Windows
//
// Compute a moving statistic over a fixed-length window of consecutive
// observations:
//
//	ma, err := filter.Rolling(series, 7, filter.Mean)
//	total, err := filter.Rolling(series, 7, filter.Sum)
//
// By default windows at the series head are dropped, so the output is
// shorter than the input by window-1 entries. The Expanding edge policy uses
// partial windows instead, keeping the output the same length:
//
//	ma, err := filter.Rolling(series, 7, filter.Mean,
//	    filter.WithEdgePolicy(filter.Expanding))
//
// The mean statistic accepts a weighting across the window:
//
//	wma, err := filter.Rolling(series, 7, filter.Mean,
//	    filter.WithWeights(filter.LinearWeights(0.05)))
//
// # Exponential Moving Averages
//
// Smooth a series with a factor in (0, 1], directly or via a span:
//
//	ema, err := filter.EMA(series, 0.3)
//
//	alpha, err := filter.Span(9) // 2/(n+1) = 0.2
//	ema, err = filter.EMA(series, alpha)
package filter
