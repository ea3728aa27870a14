package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func mustSeries(t *testing.T, values ...float64) *Series {
	t.Helper()
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{Time: day(i + 1), Value: v}
	}
	s, err := New(points)
	require.NoError(t, err)
	return s
}

func TestNewSortsInput(t *testing.T) {
	s, err := New([]Point{
		{Time: day(2), Value: 2},
		{Time: day(1), Value: 1},
		{Time: day(3), Value: 3},
	})
	require.NoError(t, err)

	require.Equal(t, []time.Time{day(1), day(2), day(3)}, s.Timestamps())
	require.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestNewDuplicateTimestamp(t *testing.T) {
	_, err := New([]Point{
		{Time: day(1), Value: 1},
		{Time: day(2), Value: 2},
		{Time: day(1), Value: 3},
	})
	require.ErrorIs(t, err, ErrDuplicateTimestamp)
}

func TestNewDuplicateInstantAcrossZones(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	_, err := New([]Point{
		{Time: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), Value: 1},
		{Time: time.Date(2024, 1, 1, 7, 0, 0, 0, est), Value: 2},
	})
	require.ErrorIs(t, err, ErrDuplicateTimestamp)
}

func TestFromValues(t *testing.T) {
	s, err := FromValues([]time.Time{day(2), day(1)}, []float64{2, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, s.Values())

	_, err = FromValues([]time.Time{day(1)}, []float64{1, 2})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAt(t *testing.T) {
	s := mustSeries(t, 1, 2, 3)

	v, err := s.At(day(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	_, err = s.At(day(4))
	require.ErrorIs(t, err, ErrTimestampNotFound)

	require.True(t, s.Contains(day(1)))
	require.False(t, s.Contains(day(4)))
}

func TestPoint(t *testing.T) {
	s := mustSeries(t, 1, 2)

	p, err := s.Point(1)
	require.NoError(t, err)
	require.Equal(t, Point{Time: day(2), Value: 2}, p)

	_, err = s.Point(2)
	require.ErrorIs(t, err, ErrTimestampNotFound)
	_, err = s.Point(-1)
	require.ErrorIs(t, err, ErrTimestampNotFound)
}

func TestFirstLast(t *testing.T) {
	s := mustSeries(t, 1, 2, 3)

	first, err := s.First()
	require.NoError(t, err)
	require.Equal(t, Point{Time: day(1), Value: 1}, first)

	last, err := s.Last()
	require.NoError(t, err)
	require.Equal(t, Point{Time: day(3), Value: 3}, last)

	_, err = Empty().First()
	require.ErrorIs(t, err, ErrInsufficientData)
	_, err = Empty().Last()
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestBetween(t *testing.T) {
	s := mustSeries(t, 1, 2, 3, 4, 5)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		opts     []SliceOption
		expected []float64
	}{
		{"half open", day(2), day(4), nil, []float64{2, 3}},
		{"closed", day(2), day(4), []SliceOption{IncludeEnd()}, []float64{2, 3, 4}},
		{"full range", day(1), day(6), nil, []float64{1, 2, 3, 4, 5}},
		{"between keys", day(2), day(3), nil, []float64{2}},
		{"empty range", day(6), day(9), nil, nil},
		{"inverted range", day(4), day(2), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Between(tt.start, tt.end, tt.opts...)
			require.Equal(t, len(tt.expected), got.Len())
			if tt.expected != nil {
				require.Equal(t, tt.expected, got.Values())
			}
		})
	}
}

func TestAllIsRestartable(t *testing.T) {
	s := mustSeries(t, 1, 2, 3)

	for range 2 {
		var times []time.Time
		var values []float64
		for ts, v := range s.All() {
			times = append(times, ts)
			values = append(values, v)
		}
		require.Equal(t, []time.Time{day(1), day(2), day(3)}, times)
		require.Equal(t, []float64{1, 2, 3}, values)
	}
}

func TestAllEarlyBreak(t *testing.T) {
	s := mustSeries(t, 1, 2, 3)

	count := 0
	for range s.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestEqual(t *testing.T) {
	a := mustSeries(t, 1, 2, 3)
	b := mustSeries(t, 1, 2, 3)
	require.True(t, a.Equal(b))

	c := mustSeries(t, 1, 2, 4)
	require.False(t, a.Equal(c))

	d := mustSeries(t, 1, 2)
	require.False(t, a.Equal(d))
}

func TestAccessorsCopy(t *testing.T) {
	s := mustSeries(t, 1, 2, 3)

	values := s.Values()
	values[0] = 100
	times := s.Timestamps()
	times[0] = day(9)

	require.Equal(t, []float64{1, 2, 3}, s.Values())
	require.Equal(t, day(1), s.Timestamps()[0])
}

func TestNewCopiesInput(t *testing.T) {
	points := []Point{{Time: day(1), Value: 1}, {Time: day(2), Value: 2}}
	s, err := New(points)
	require.NoError(t, err)

	points[0].Value = 100
	require.Equal(t, []float64{1, 2}, s.Values())
}

func TestEmpty(t *testing.T) {
	s := Empty()
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())
}
