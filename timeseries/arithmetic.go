package timeseries

import (
	"fmt"
	"math"
	"time"
)

// align intersects the timestamps of two series and returns the shared
// timestamps with both value sequences in matching order.
func (s *Series) align(other *Series) (times []time.Time, a, b []float64) {
	i, j := 0, 0
	for i < len(s.times) && j < len(other.times) {
		switch {
		case s.times[i].Before(other.times[j]):
			i++
		case other.times[j].Before(s.times[i]):
			j++
		default:
			times = append(times, s.times[i])
			a = append(a, s.values[i])
			b = append(b, other.values[j])
			i++
			j++
		}
	}
	return times, a, b
}

// Combine aligns two series on shared timestamps and combines the paired
// values with f. Fully disjoint series produce an empty series, not an error.
func (s *Series) Combine(other *Series, f func(a, b float64) float64) *Series {
	times, a, b := s.align(other)
	values := make([]float64, len(times))
	for i := range times {
		values[i] = f(a[i], b[i])
	}
	return &Series{times: times, values: values}
}

// Apply returns a new series with f applied to every value. Timestamps are
// preserved.
func (s *Series) Apply(f func(float64) float64) *Series {
	times := make([]time.Time, len(s.times))
	values := make([]float64, len(s.values))
	copy(times, s.times)
	for i, v := range s.values {
		values[i] = f(v)
	}
	return &Series{times: times, values: values}
}

// Add returns the element-wise sum of two series over shared timestamps.
func (s *Series) Add(other *Series) *Series {
	return s.Combine(other, func(a, b float64) float64 { return a + b })
}

// Sub returns the element-wise difference of two series over shared
// timestamps.
func (s *Series) Sub(other *Series) *Series {
	return s.Combine(other, func(a, b float64) float64 { return a - b })
}

// Mul returns the element-wise product of two series over shared timestamps.
func (s *Series) Mul(other *Series) *Series {
	return s.Combine(other, func(a, b float64) float64 { return a * b })
}

// Div returns the element-wise quotient of two series over shared
// timestamps. Fails with ErrDivisionByZero when the divisor is zero at an
// aligned timestamp.
func (s *Series) Div(other *Series) (*Series, error) {
	times, a, b := s.align(other)
	values := make([]float64, len(times))
	for i := range times {
		if b[i] == 0 {
			return nil, fmt.Errorf("%w: at %s",
				ErrDivisionByZero, times[i].Format(time.RFC3339Nano))
		}
		values[i] = a[i] / b[i]
	}
	return &Series{times: times, values: values}, nil
}

// Pow returns the element-wise exponentiation of two series over shared
// timestamps, with the other series as exponent.
func (s *Series) Pow(other *Series) *Series {
	return s.Combine(other, math.Pow)
}

// AddScalar adds c to every value, preserving all timestamps.
func (s *Series) AddScalar(c float64) *Series {
	return s.Apply(func(v float64) float64 { return v + c })
}

// SubScalar subtracts c from every value, preserving all timestamps.
func (s *Series) SubScalar(c float64) *Series {
	return s.Apply(func(v float64) float64 { return v - c })
}

// MulScalar multiplies every value by c, preserving all timestamps.
func (s *Series) MulScalar(c float64) *Series {
	return s.Apply(func(v float64) float64 { return v * c })
}

// DivScalar divides every value by c, preserving all timestamps. Fails with
// ErrDivisionByZero when c is zero.
func (s *Series) DivScalar(c float64) (*Series, error) {
	if c == 0 {
		return nil, fmt.Errorf("%w: scalar divisor", ErrDivisionByZero)
	}
	return s.Apply(func(v float64) float64 { return v / c }), nil
}

// PowScalar raises every value to the power c, preserving all timestamps.
func (s *Series) PowScalar(c float64) *Series {
	return s.Apply(func(v float64) float64 { return math.Pow(v, c) })
}

// Gt compares two series over shared timestamps and returns a 0/1 mask that
// is 1 where the receiver's value is strictly greater.
func (s *Series) Gt(other *Series) *Series {
	return s.Combine(other, mask(func(a, b float64) bool { return a > b }))
}

// Ge returns an aligned 0/1 mask that is 1 where the receiver's value is
// greater than or equal.
func (s *Series) Ge(other *Series) *Series {
	return s.Combine(other, mask(func(a, b float64) bool { return a >= b }))
}

// Lt returns an aligned 0/1 mask that is 1 where the receiver's value is
// strictly less.
func (s *Series) Lt(other *Series) *Series {
	return s.Combine(other, mask(func(a, b float64) bool { return a < b }))
}

// Le returns an aligned 0/1 mask that is 1 where the receiver's value is
// less than or equal.
func (s *Series) Le(other *Series) *Series {
	return s.Combine(other, mask(func(a, b float64) bool { return a <= b }))
}

func mask(cmp func(a, b float64) bool) func(a, b float64) float64 {
	return func(a, b float64) float64 {
		if cmp(a, b) {
			return 1
		}
		return 0
	}
}
