package filter

import (
	"fmt"

	"github.com/austerj/tsgo/timeseries"
)

// EMA computes the exponential moving average of the series with smoothing
// factor alpha. The first output equals the first observation; each later
// output is alpha*value + (1-alpha)*previous. Output timestamps match the
// input exactly, and with alpha = 1 so do the values.
//
// Fails with ErrInvalidConfig when alpha lies outside (0, 1].
func EMA(s *timeseries.Series, alpha float64) (*timeseries.Series, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: smoothing factor %v outside (0, 1]",
			timeseries.ErrInvalidConfig, alpha)
	}

	values := s.Values()
	smoothed := make([]float64, len(values))
	for i, v := range values {
		if i == 0 {
			smoothed[0] = v
			continue
		}
		smoothed[i] = alpha*v + (1-alpha)*smoothed[i-1]
	}

	return timeseries.FromValues(s.Timestamps(), smoothed)
}

// Span converts a span of n periods to the equivalent smoothing factor,
// alpha = 2/(n+1). Fails with ErrInvalidConfig when n < 1.
func Span(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: span %d, must be at least 1",
			timeseries.ErrInvalidConfig, n)
	}
	return 2 / float64(n+1), nil
}
