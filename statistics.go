package mathops

import (
	"math"
	"slices"

	"github.com/hyp3rd/ewrap"

	"github.com/aaiyer/math-ops/sentinel"
)

// filtered returns the non-NaN values of the vector in index order. The
// result is a fresh slice and safe for the caller to sort.
func (v Vector[T]) filtered() []T {
	out := make([]T, 0, len(v.data))

	for _, x := range v.data {
		if !isNaN(x) {
			out = append(out, x)
		}
	}

	return out
}

// Mean computes the arithmetic mean of the non-NaN values.
// Returns sentinel.ErrEmptyDataset when no non-NaN value exists.
func (v Vector[T]) Mean() (T, error) {
	var sum T

	count := 0

	for _, x := range v.data {
		if isNaN(x) {
			continue
		}

		sum += x
		count++
	}

	if count == 0 {
		return 0, ewrap.Wrap(sentinel.ErrEmptyDataset, "mean")
	}

	return sum / T(count), nil
}

// Variance computes the population variance of the non-NaN values: the mean
// of the squared deviations from Mean, with denominator N rather than N-1.
// Returns sentinel.ErrInsufficientData when fewer than two non-NaN values
// exist, the empty vector included; a single value has zero deviations and is
// treated as undefined, not as zero.
func (v Vector[T]) Variance() (T, error) {
	mean, err := v.Mean()
	if err != nil {
		return 0, ewrap.Wrap(sentinel.ErrInsufficientData, "variance")
	}

	var sumSqDiff T

	count := 0

	for _, x := range v.data {
		if isNaN(x) {
			continue
		}

		diff := x - mean
		sumSqDiff += diff * diff
		count++
	}

	if count < 2 {
		return 0, ewrap.Wrap(sentinel.ErrInsufficientData, "variance")
	}

	return sumSqDiff / T(count), nil
}

// StdDev computes the population standard deviation, the square root of
// Variance. An undefined variance propagates unchanged.
func (v Vector[T]) StdDev() (T, error) {
	variance, err := v.Variance()
	if err != nil {
		return 0, err
	}

	return T(math.Sqrt(float64(variance))), nil
}

// Median computes the middle value of the non-NaN values: the single middle
// element for an odd count, the average of the two middle elements for an
// even count. Returns sentinel.ErrEmptyDataset when no non-NaN value exists.
func (v Vector[T]) Median() (T, error) {
	vals := v.filtered()

	n := len(vals)
	if n == 0 {
		return 0, ewrap.Wrap(sentinel.ErrEmptyDataset, "median")
	}

	slices.Sort(vals)

	mid := n / 2
	if n%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2, nil
	}

	return vals[mid], nil
}

// Quantile computes the q-th quantile of the non-NaN values using linear
// interpolation between order statistics (the R-7 definition, matching
// NumPy's "linear" mode): position = q*(n-1) into the ascending filtered
// values, interpolating between the neighboring elements when the position
// is fractional.
//
// Returns sentinel.ErrQuantileOutOfRange when q is NaN or falls outside
// [0, 1], and sentinel.ErrEmptyDataset when no non-NaN value exists.
func (v Vector[T]) Quantile(q T) (T, error) {
	if isNaN(q) || q < 0 || q > 1 {
		return 0, ewrap.Wrap(sentinel.ErrQuantileOutOfRange, "quantile")
	}

	vals := v.filtered()

	n := len(vals)
	if n == 0 {
		return 0, ewrap.Wrap(sentinel.ErrEmptyDataset, "quantile")
	}

	slices.Sort(vals)

	pos := q * T(n-1)
	posFloor := T(math.Floor(float64(pos)))

	lower := int(posFloor)
	upper := int(math.Ceil(float64(pos)))

	if lower == upper {
		return vals[lower], nil
	}

	weight := pos - posFloor

	return vals[lower] + (vals[upper]-vals[lower])*weight, nil
}

// IQR computes the interquartile range, Quantile(0.75) - Quantile(0.25).
// If either quantile is undefined the error propagates; IQR never silently
// defaults to zero.
func (v Vector[T]) IQR() (T, error) {
	q75, err := v.Quantile(0.75)
	if err != nil {
		return 0, ewrap.Wrap(err, "iqr")
	}

	q25, err := v.Quantile(0.25)
	if err != nil {
		return 0, ewrap.Wrap(err, "iqr")
	}

	return q75 - q25, nil
}

// Min returns the smallest non-NaN value.
// Returns sentinel.ErrEmptyDataset when no non-NaN value exists.
func (v Vector[T]) Min() (T, error) {
	vals := v.filtered()
	if len(vals) == 0 {
		return 0, ewrap.Wrap(sentinel.ErrEmptyDataset, "min")
	}

	return slices.Min(vals), nil
}

// Max returns the largest non-NaN value.
// Returns sentinel.ErrEmptyDataset when no non-NaN value exists.
func (v Vector[T]) Max() (T, error) {
	vals := v.filtered()
	if len(vals) == 0 {
		return 0, ewrap.Wrap(sentinel.ErrEmptyDataset, "max")
	}

	return slices.Max(vals), nil
}

// CumulativeSum returns a vector of the same length as the input holding the
// running total of the non-NaN values seen so far. A NaN entry contributes
// nothing to the total but still emits the running total at its position, so
// NaN never propagates into later elements.
func (v Vector[T]) CumulativeSum() Vector[T] {
	out := make([]T, 0, len(v.data))

	var running T

	for _, x := range v.data {
		if !isNaN(x) {
			running += x
		}

		out = append(out, running)
	}

	return Wrap(out)
}
