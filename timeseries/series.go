// Package timeseries provides the core time series container and operations.
package timeseries

import (
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Point is a single (timestamp, value) observation.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is an ordered, uniquely-keyed mapping from timestamps to values.
// Entries are sorted ascending by timestamp. A Series is immutable after
// construction: accessors copy, and operations return new instances.
type Series struct {
	times  []time.Time
	values []float64
}

// New creates a series from points. Input order does not matter; the result
// is sorted ascending by timestamp. Fails with ErrDuplicateTimestamp when two
// points share the same instant.
func New(points []Point) (*Series, error) {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	times := make([]time.Time, len(sorted))
	values := make([]float64, len(sorted))
	for i, p := range sorted {
		if i > 0 && p.Time.Equal(times[i-1]) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTimestamp, p.Time.Format(time.RFC3339Nano))
		}
		times[i] = p.Time
		values[i] = p.Value
	}
	return &Series{times: times, values: values}, nil
}

// FromValues creates a series from parallel timestamp and value slices.
// Fails with ErrDimensionMismatch when the slices differ in length.
func FromValues(times []time.Time, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps, %d values",
			ErrDimensionMismatch, len(times), len(values))
	}
	points := make([]Point, len(times))
	for i := range times {
		points[i] = Point{Time: times[i], Value: values[i]}
	}
	return New(points)
}

// Empty returns a valid zero-length series.
func Empty() *Series {
	return &Series{}
}

// Len returns the number of entries in the series.
func (s *Series) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the series has no entries.
func (s *Series) IsEmpty() bool {
	return len(s.values) == 0
}

// Timestamps returns a copy of the series timestamps in ascending order.
func (s *Series) Timestamps() []time.Time {
	times := make([]time.Time, len(s.times))
	copy(times, s.times)
	return times
}

// Values returns a copy of the series values in timestamp order.
func (s *Series) Values() []float64 {
	values := make([]float64, len(s.values))
	copy(values, s.values)
	return values
}

// Point returns the i-th observation in timestamp order. Fails with
// ErrTimestampNotFound when i is out of range.
func (s *Series) Point(i int) (Point, error) {
	if i < 0 || i >= len(s.values) {
		return Point{}, fmt.Errorf("%w: index %d out of range [0, %d)",
			ErrTimestampNotFound, i, len(s.values))
	}
	return Point{Time: s.times[i], Value: s.values[i]}, nil
}

// At returns the value at the exact timestamp t. Fails with
// ErrTimestampNotFound when t is not a key of the series.
func (s *Series) At(t time.Time) (float64, error) {
	i := s.search(t)
	if i < len(s.times) && s.times[i].Equal(t) {
		return s.values[i], nil
	}
	return 0, fmt.Errorf("%w: %s", ErrTimestampNotFound, t.Format(time.RFC3339Nano))
}

// Contains reports whether t is a key of the series.
func (s *Series) Contains(t time.Time) bool {
	i := s.search(t)
	return i < len(s.times) && s.times[i].Equal(t)
}

// First returns the earliest observation. Fails with ErrInsufficientData on
// an empty series.
func (s *Series) First() (Point, error) {
	if len(s.values) == 0 {
		return Point{}, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}
	return Point{Time: s.times[0], Value: s.values[0]}, nil
}

// Last returns the latest observation. Fails with ErrInsufficientData on an
// empty series.
func (s *Series) Last() (Point, error) {
	if len(s.values) == 0 {
		return Point{}, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}
	n := len(s.values) - 1
	return Point{Time: s.times[n], Value: s.values[n]}, nil
}

// SliceOption configures interval slicing.
type SliceOption func(*sliceConfig)

type sliceConfig struct {
	includeEnd bool
}

// IncludeEnd makes Between treat the interval as closed, [start, end].
func IncludeEnd() SliceOption {
	return func(c *sliceConfig) {
		c.includeEnd = true
	}
}

// Between returns a new series holding the entries in [start, end). With
// IncludeEnd the interval is closed. An empty result is a valid empty series,
// not an error.
func (s *Series) Between(start, end time.Time, opts ...SliceOption) *Series {
	var cfg sliceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	lo := s.search(start)
	hi := s.search(end)
	if cfg.includeEnd && hi < len(s.times) && s.times[hi].Equal(end) {
		hi++
	}
	if lo >= hi {
		return Empty()
	}

	times := make([]time.Time, hi-lo)
	values := make([]float64, hi-lo)
	copy(times, s.times[lo:hi])
	copy(values, s.values[lo:hi])
	return &Series{times: times, values: values}
}

// All returns a restartable iterator over (timestamp, value) pairs in
// ascending timestamp order.
func (s *Series) All() iter.Seq2[time.Time, float64] {
	return func(yield func(time.Time, float64) bool) {
		for i := range s.values {
			if !yield(s.times[i], s.values[i]) {
				return
			}
		}
	}
}

// Points returns a copy of all observations in timestamp order.
func (s *Series) Points() []Point {
	points := make([]Point, len(s.values))
	for i := range s.values {
		points[i] = Point{Time: s.times[i], Value: s.values[i]}
	}
	return points
}

// Equal reports whether two series hold the same timestamps and values.
func (s *Series) Equal(other *Series) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for i := range s.values {
		if !s.times[i].Equal(other.times[i]) || s.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// String returns a date/value table representation of the series.
func (s *Series) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-25s %17s\n", "time", "value")
	for i := range s.values {
		fmt.Fprintf(&b, "%-25s %17s\n",
			s.times[i].Format(time.RFC3339),
			strconv.FormatFloat(s.values[i], 'f', -1, 64))
	}
	return b.String()
}

// search returns the index of the first timestamp not before t.
func (s *Series) search(t time.Time) int {
	return sort.Search(len(s.times), func(i int) bool {
		return !s.times[i].Before(t)
	})
}
