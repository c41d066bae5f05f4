// Package sentinel provides standardized error definitions for the math-ops
// library. This package centralizes all error types used across the library's
// components, ensuring consistent error handling and messaging throughout.
//
// The errors defined here cover two distinct failure classes:
// - Undefined results (empty datasets, insufficient sample sizes, quantile
//   fractions outside the closed unit interval)
// - Misuse of the API (mismatched vector lengths in elementwise arithmetic,
//   unknown serializer names)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrEmptyDataset is returned when a statistic is requested over a vector
	// with no non-NaN values.
	ErrEmptyDataset = ewrap.New("empty dataset")

	// ErrInsufficientData is returned when a statistic needs more non-NaN
	// values than the vector holds, e.g. variance over fewer than two values.
	ErrInsufficientData = ewrap.New("insufficient data")

	// ErrQuantileOutOfRange is returned when a quantile fraction falls outside
	// the closed interval [0, 1].
	ErrQuantileOutOfRange = ewrap.New("quantile fraction out of range")

	// ErrLengthMismatch is returned when an elementwise operation is applied
	// to two vectors of different lengths.
	ErrLengthMismatch = ewrap.New("vectors must be of the same length")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")
)
