package mathops

import "slices"

// compareNaNLast orders two floating-point values ascending, with NaN sorting
// after every non-NaN value. Two NaNs compare equal. This is not a true total
// order in the mathematical sense, but it is sufficient and stable for
// sorting: after a sort, all non-NaN values appear first in ascending numeric
// order, followed by the NaN values.
func compareNaNLast[T Float](a, b T) int {
	switch {
	case isNaN(a) && isNaN(b):
		return 0
	case isNaN(a):
		return 1
	case isNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sorted returns a new Vector with the receiver's values in ascending order
// under the NaN-last comparison. The receiver is left unmodified. Defined for
// any length; empty and single-element vectors come back as-is.
func (v Vector[T]) Sorted() Vector[T] {
	out := v.Clone()
	out.SortInPlace()

	return out
}

// SortInPlace sorts the receiver's underlying slice ascending under the
// NaN-last comparison. The sort is stable, so equal keys keep their relative
// order.
func (v Vector[T]) SortInPlace() {
	slices.SortStableFunc(v.data, compareNaNLast[T])
}
