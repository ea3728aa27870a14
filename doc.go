// Package tsgo provides one-dimensional time series with CSV ingestion,
// descriptive statistics, alignment-aware arithmetic, and windowed filters.
//
// A Series is an immutable, ordered mapping from timestamps to float64
// values. Series are always sorted ascending by timestamp with unique keys,
// and every operation returns a new Series rather than mutating its input,
// so a Series can safely be read from multiple goroutines.
//
// # Quick Start
//
// Build a series and compute a moving average:
//
//	series, err := timeseries.New([]timeseries.Point{
//	    {Time: t1, Value: 10},
//	    {Time: t2, Value: 20},
//	    {Time: t3, Value: 30},
//	})
//	ma, err := filter.Rolling(series, 2, filter.Mean)
//
// Load from CSV and summarize:
//
//	series, err := timeseries.ReadCSV("prices.csv", nil)
//	summary, err := stats.Describe(series)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: the Series container, CSV I/O, and arithmetic
//   - stats: scalar descriptive statistics over a series
//   - filter: rolling windows and exponential moving averages
//   - cmd/tscli: command-line front-end over the library
package tsgo
