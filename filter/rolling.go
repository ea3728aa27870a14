// Package filter produces derived time series via windowed transforms.
package filter

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/austerj/tsgo/timeseries"
)

// Statistic selects the reduction applied to each window.
type Statistic string

const (
	Mean Statistic = "mean"
	Sum  Statistic = "sum"
	Min  Statistic = "min"
	Max  Statistic = "max"
	Std  Statistic = "std"
)

// EdgePolicy governs output at the series head, where a full window is
// unavailable.
type EdgePolicy string

const (
	// Drop emits no output before the window fills; the output series is
	// shorter than the input by window-1 entries.
	Drop EdgePolicy = "drop"

	// Expanding uses all available observations for early windows; the
	// output series has the same length as the input.
	Expanding EdgePolicy = "expanding"
)

// Option configures a rolling window.
type Option func(*config)

type config struct {
	edge    EdgePolicy
	weights Weighting
}

// WithEdgePolicy sets the edge policy. The default is Drop.
func WithEdgePolicy(p EdgePolicy) Option {
	return func(c *config) {
		c.edge = p
	}
}

// WithWeights sets the window weighting, applied to the Mean statistic only.
// The default weights every observation evenly.
func WithWeights(w Weighting) Option {
	return func(c *config) {
		c.weights = w
	}
}

// Rolling computes a windowed statistic over the series. Each output
// timestamp carries the statistic over the window of most recent
// observations ending there; the source series is never mutated.
//
// The window length counts observations and must be at least 1 (at least 2
// for Std). An invalid window, statistic, or edge policy fails with
// ErrInvalidConfig.
func Rolling(s *timeseries.Series, window int, statistic Statistic, opts ...Option) (*timeseries.Series, error) {
	cfg := config{edge: Drop, weights: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	if window < 1 {
		return nil, fmt.Errorf("%w: window length %d, must be at least 1",
			timeseries.ErrInvalidConfig, window)
	}
	if statistic == Std && window < 2 {
		return nil, fmt.Errorf("%w: window length %d, std requires at least 2",
			timeseries.ErrInvalidConfig, window)
	}
	if cfg.edge != Drop && cfg.edge != Expanding {
		return nil, fmt.Errorf("%w: unknown edge policy %q",
			timeseries.ErrInvalidConfig, cfg.edge)
	}
	if cfg.weights != nil {
		if statistic != Mean {
			return nil, fmt.Errorf("%w: weights apply to the mean statistic only, got %q",
				timeseries.ErrInvalidConfig, statistic)
		}
		// parameter range errors surface even when no window runs
		if err := cfg.weights.validate(); err != nil {
			return nil, err
		}
	}
	reduce, err := reducer(statistic, cfg.weights)
	if err != nil {
		return nil, err
	}

	times := s.Timestamps()
	values := s.Values()

	var outTimes []time.Time
	var outValues []float64

	start := 0
	if cfg.edge == Drop {
		start = window - 1
	}
	for i := start; i < len(values); i++ {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		if statistic == Std && i-lo+1 < 2 {
			// expanding head window too small for a sample deviation
			continue
		}
		v, err := reduce(values[lo : i+1])
		if err != nil {
			return nil, err
		}
		outTimes = append(outTimes, times[i])
		outValues = append(outValues, v)
	}

	return timeseries.FromValues(outTimes, outValues)
}

// reducer returns the reduction for a statistic over one window of values.
func reducer(statistic Statistic, weights Weighting) (func([]float64) (float64, error), error) {
	if statistic == Mean && weights != nil {
		// weight vectors sum to one, so the weighted mean is a dot product
		return func(w []float64) (float64, error) {
			wv, err := weights.weights(len(w))
			if err != nil {
				return 0, err
			}
			return floats.Dot(wv, w), nil
		}, nil
	}

	switch statistic {
	case Mean:
		return noErr(func(w []float64) float64 { return stat.Mean(w, nil) }), nil
	case Sum:
		return noErr(floats.Sum), nil
	case Min:
		return noErr(floats.Min), nil
	case Max:
		return noErr(floats.Max), nil
	case Std:
		return noErr(func(w []float64) float64 { return stat.StdDev(w, nil) }), nil
	default:
		return nil, fmt.Errorf("%w: unknown statistic %q",
			timeseries.ErrInvalidConfig, statistic)
	}
}

func noErr(f func([]float64) float64) func([]float64) (float64, error) {
	return func(w []float64) (float64, error) {
		return f(w), nil
	}
}
