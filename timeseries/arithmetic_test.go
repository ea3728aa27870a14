package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddAlignsOnSharedTimestamps(t *testing.T) {
	a, err := New([]Point{
		{Time: day(1), Value: 1},
		{Time: day(2), Value: 2},
	})
	require.NoError(t, err)
	b, err := New([]Point{
		{Time: day(2), Value: 10},
		{Time: day(3), Value: 20},
	})
	require.NoError(t, err)

	sum := a.Add(b)
	require.Equal(t, []time.Time{day(2)}, sum.Timestamps())
	require.Equal(t, []float64{12}, sum.Values())
}

func TestArithmeticSeries(t *testing.T) {
	a := mustSeries(t, 10, 20, 30)
	b := mustSeries(t, 1, 2, 3)

	tests := []struct {
		name     string
		got      *Series
		expected []float64
	}{
		{"add", a.Add(b), []float64{11, 22, 33}},
		{"sub", a.Sub(b), []float64{9, 18, 27}},
		{"mul", a.Mul(b), []float64{10, 40, 90}},
		{"pow", b.Pow(b), []float64{1, 4, 27}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, a.Timestamps(), tt.got.Timestamps())
			require.Equal(t, tt.expected, tt.got.Values())
		})
	}
}

func TestDiv(t *testing.T) {
	a := mustSeries(t, 10, 20, 30)
	b := mustSeries(t, 2, 4, 5)

	quot, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 6}, quot.Values())
}

func TestDivByAlignedZero(t *testing.T) {
	a := mustSeries(t, 10, 20)
	b := mustSeries(t, 2, 0)

	_, err := a.Div(b)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDisjointSeriesYieldEmpty(t *testing.T) {
	a, err := New([]Point{{Time: day(1), Value: 1}})
	require.NoError(t, err)
	b, err := New([]Point{{Time: day(2), Value: 2}})
	require.NoError(t, err)

	require.True(t, a.Add(b).IsEmpty())
	require.True(t, a.Mul(b).IsEmpty())

	quot, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, quot.IsEmpty())
}

func TestScalarArithmeticPreservesTimestamps(t *testing.T) {
	a := mustSeries(t, 10, 20, 30)

	tests := []struct {
		name     string
		got      *Series
		expected []float64
	}{
		{"add", a.AddScalar(5), []float64{15, 25, 35}},
		{"sub", a.SubScalar(5), []float64{5, 15, 25}},
		{"mul", a.MulScalar(2), []float64{20, 40, 60}},
		{"pow", a.PowScalar(2), []float64{100, 400, 900}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, a.Timestamps(), tt.got.Timestamps())
			require.Equal(t, tt.expected, tt.got.Values())
		})
	}
}

func TestDivScalar(t *testing.T) {
	a := mustSeries(t, 10, 20)

	quot, err := a.DivScalar(2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 10}, quot.Values())

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestComparisonMasks(t *testing.T) {
	a := mustSeries(t, 1, 5, 3)
	b := mustSeries(t, 2, 2, 3)

	require.Equal(t, []float64{0, 1, 0}, a.Gt(b).Values())
	require.Equal(t, []float64{0, 1, 1}, a.Ge(b).Values())
	require.Equal(t, []float64{1, 0, 0}, a.Lt(b).Values())
	require.Equal(t, []float64{1, 0, 1}, a.Le(b).Values())
}

func TestApply(t *testing.T) {
	a := mustSeries(t, 1, 2, 3)

	doubled := a.Apply(func(v float64) float64 { return 2 * v })
	require.Equal(t, a.Timestamps(), doubled.Timestamps())
	require.Equal(t, []float64{2, 4, 6}, doubled.Values())

	// source unchanged
	require.Equal(t, []float64{1, 2, 3}, a.Values())
}

func TestCombine(t *testing.T) {
	a := mustSeries(t, 1, 2, 3)
	b := mustSeries(t, 4, 5, 6)

	maxed := a.Combine(b, func(x, y float64) float64 {
		if x > y {
			return x
		}
		return y
	})
	require.Equal(t, []float64{4, 5, 6}, maxed.Values())
}
