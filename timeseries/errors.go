package timeseries

import "errors"

// Sentinel errors for the failure classes of series construction and use.
// Callers match these with errors.Is; wrapped variants carry the offending
// timestamp, row, or parameter.
var (
	// ErrParse reports a malformed CSV row, an unparsable timestamp, or a
	// non-numeric value.
	ErrParse = errors.New("parse error")

	// ErrDuplicateTimestamp reports a repeated timestamp on construction.
	ErrDuplicateTimestamp = errors.New("duplicate timestamp")

	// ErrTimestampNotFound reports an exact-timestamp lookup miss.
	ErrTimestampNotFound = errors.New("timestamp not found")

	// ErrDivisionByZero reports division by a zero value at an aligned
	// timestamp, or by a zero scalar.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInsufficientData reports a statistic that requires more
	// observations than the series holds.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidConfig reports an out-of-range filter parameter.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDimensionMismatch reports timestamp and value inputs of different
	// lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
