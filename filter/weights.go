package filter

import (
	"fmt"

	"github.com/austerj/tsgo/timeseries"
)

// Weighting produces the weight vector applied across a window. Weight
// vectors sum to 1.
type Weighting interface {
	validate() error
	weights(n int) ([]float64, error)
}

// EvenWeights weights every observation in the window equally.
func EvenWeights() Weighting {
	return evenWeights{}
}

type evenWeights struct{}

func (evenWeights) validate() error {
	return nil
}

func (evenWeights) weights(n int) ([]float64, error) {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w, nil
}

// LinearWeights weights observations linearly, increasing from minWeight at
// the oldest observation toward the newest. minWeight must lie in (0, 1) and
// satisfy n*minWeight <= 1 for the window size in use; violations fail with
// ErrInvalidConfig.
func LinearWeights(minWeight float64) Weighting {
	return linearWeights{min: minWeight}
}

type linearWeights struct {
	min float64
}

func (l linearWeights) validate() error {
	if l.min <= 0 || l.min >= 1 {
		return fmt.Errorf("%w: minimum weight %v outside (0, 1)",
			timeseries.ErrInvalidConfig, l.min)
	}
	return nil
}

func (l linearWeights) weights(n int) ([]float64, error) {
	if n == 1 {
		return []float64{1}, nil
	}
	if float64(n)*l.min > 1 {
		return nil, fmt.Errorf("%w: minimum weight %v too large for window %d",
			timeseries.ErrInvalidConfig, l.min, n)
	}
	// partial sum of natural numbers from 1 to n-1; slope makes the
	// weights sum to one
	partialSum := float64(n*(n-1)) / 2
	slope := (1 - float64(n)*l.min) / partialSum
	w := make([]float64, n)
	for i := range w {
		w[i] = l.min + slope*float64(i)
	}
	return w, nil
}
