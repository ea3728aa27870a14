// Package timeseries provides the ordered timestamp/value container that the
// rest of the module builds on.
//
// A Series maps unique timestamps to float64 values and is always sorted
// ascending by timestamp. Series are immutable: every operation returns a new
// Series and accessors return copies, so instances can be shared freely.
//
// # Creating a Series
//
// Create a series from points (any input order):
//
//	series, err := timeseries.New([]timeseries.Point{
//	    {Time: t2, Value: 2},
//	    {Time: t1, Value: 1},
//	    {Time: t3, Value: 3},
//	})
//
// Or from parallel slices:
//
//	series, err := timeseries.FromValues(times, values)
//
// # Loading from CSV
//
// Read a two-column CSV file with a header:
//
//	series, err := timeseries.ReadCSV("data.csv", nil)
//
// Customize parsing:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.TimeColumn = "ds"
//	opts.ValueColumn = "y"
//	opts.TimeLayout = "2006-01-02"
//	series, err := timeseries.ReadCSV("data.csv", opts)
//
// The default timestamp layout is RFC 3339; date-only input ("2006-01-02")
// is also accepted under the default layout.
//
// # Lookup and Slicing
//
// Query by timestamp or interval:
//
//	v, err := series.At(t2)
//	window := series.Between(t1, t3)                // [t1, t3)
//	window = series.Between(t1, t3, timeseries.IncludeEnd())
//
// # Arithmetic
//
// Two series combine by aligning on shared timestamps; the result holds only
// timestamps present in both operands:
//
//	sum := a.Add(b)
//	ratio, err := a.Div(b)
//
// A scalar applies to every value and preserves all timestamps:
//
//	scaled := a.MulScalar(2)
package timeseries
