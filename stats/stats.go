// Package stats provides scalar descriptive statistics over a time series.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/austerj/tsgo/timeseries"
)

// Mean returns the arithmetic mean of the series values. Fails with
// ErrInsufficientData on an empty series.
func Mean(s *timeseries.Series) (float64, error) {
	if s.Len() == 0 {
		return 0, fmt.Errorf("%w: mean requires at least 1 observation",
			timeseries.ErrInsufficientData)
	}
	return stat.Mean(s.Values(), nil), nil
}

// Variance returns the unbiased sample variance of the series values, using
// Bessel's correction. Fails with ErrInsufficientData when the series has
// fewer than 2 observations.
func Variance(s *timeseries.Series) (float64, error) {
	if s.Len() < 2 {
		return 0, fmt.Errorf("%w: variance requires at least 2 observations, have %d",
			timeseries.ErrInsufficientData, s.Len())
	}
	return stat.Variance(s.Values(), nil), nil
}

// Std returns the sample standard deviation of the series values. Fails with
// ErrInsufficientData when the series has fewer than 2 observations.
func Std(s *timeseries.Series) (float64, error) {
	if s.Len() < 2 {
		return 0, fmt.Errorf("%w: standard deviation requires at least 2 observations, have %d",
			timeseries.ErrInsufficientData, s.Len())
	}
	return stat.StdDev(s.Values(), nil), nil
}

// Min returns the smallest value in the series. Fails with
// ErrInsufficientData on an empty series.
func Min(s *timeseries.Series) (float64, error) {
	p, err := MinAt(s)
	return p.Value, err
}

// Max returns the largest value in the series. Fails with
// ErrInsufficientData on an empty series.
func Max(s *timeseries.Series) (float64, error) {
	p, err := MaxAt(s)
	return p.Value, err
}

// MinAt returns the observation holding the smallest value. Ties break to
// the earliest timestamp. Fails with ErrInsufficientData on an empty series.
func MinAt(s *timeseries.Series) (timeseries.Point, error) {
	return extremum(s, func(v, best float64) bool { return v < best })
}

// MaxAt returns the observation holding the largest value. Ties break to the
// earliest timestamp. Fails with ErrInsufficientData on an empty series.
func MaxAt(s *timeseries.Series) (timeseries.Point, error) {
	return extremum(s, func(v, best float64) bool { return v > best })
}

func extremum(s *timeseries.Series, better func(v, best float64) bool) (timeseries.Point, error) {
	if s.IsEmpty() {
		return timeseries.Point{}, fmt.Errorf("%w: empty series",
			timeseries.ErrInsufficientData)
	}
	best, _ := s.Point(0)
	for t, v := range s.All() {
		// strict comparison keeps the earliest timestamp on ties
		if better(v, best.Value) {
			best = timeseries.Point{Time: t, Value: v}
		}
	}
	return best, nil
}

// Summary holds the descriptive statistics of a series.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Describe computes the summary statistics of a series. Std is NaN when the
// series has a single observation. Fails with ErrInsufficientData on an
// empty series.
func Describe(s *timeseries.Series) (Summary, error) {
	mean, err := Mean(s)
	if err != nil {
		return Summary{}, err
	}
	min, _ := Min(s)
	max, _ := Max(s)

	std := math.NaN()
	if s.Len() >= 2 {
		std, _ = Std(s)
	}
	return Summary{
		Count: s.Len(),
		Mean:  mean,
		Std:   std,
		Min:   min,
		Max:   max,
	}, nil
}

// Crosscovariance returns the unbiased sample cross-covariance of two series
// over their shared timestamps. Fails with ErrInsufficientData when fewer
// than 2 timestamps align.
func Crosscovariance(a, b *timeseries.Series) (float64, error) {
	x, y, err := alignedValues(a, b)
	if err != nil {
		return 0, err
	}
	return stat.Covariance(x, y, nil), nil
}

// Crosscorrelation returns the Pearson cross-correlation of two series over
// their shared timestamps. Fails with ErrInsufficientData when fewer than 2
// timestamps align and with ErrDivisionByZero when either aligned series has
// zero variance.
func Crosscorrelation(a, b *timeseries.Series) (float64, error) {
	x, y, err := alignedValues(a, b)
	if err != nil {
		return 0, err
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, fmt.Errorf("%w: zero-variance series has no correlation",
			timeseries.ErrDivisionByZero)
	}
	return stat.Correlation(x, y, nil), nil
}

func alignedValues(a, b *timeseries.Series) (x, y []float64, err error) {
	shared := a.Combine(b, func(av, _ float64) float64 { return av })
	if shared.Len() < 2 {
		return nil, nil, fmt.Errorf("%w: %d shared timestamps, need at least 2",
			timeseries.ErrInsufficientData, shared.Len())
	}
	x = shared.Values()
	y = b.Combine(a, func(bv, _ float64) float64 { return bv }).Values()
	return x, y, nil
}
