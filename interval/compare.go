package interval

import "cmp"

// compareLower orders two lower bounds by how far left they reach: a closed
// endpoint reaches further than an open one at the same value.
func compareLower[T cmp.Ordered](a, b Bound[T]) int {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	switch {
	case a.Closed == b.Closed:
		return 0
	case a.Closed:
		return -1
	default:
		return 1
	}
}

// compareUpper orders two upper bounds by how far right they reach: a closed
// endpoint reaches further than an open one at the same value.
func compareUpper[T cmp.Ordered](a, b Bound[T]) int {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	switch {
	case a.Closed == b.Closed:
		return 0
	case a.Closed:
		return 1
	default:
		return -1
	}
}

// separated reports whether a gap exists between an upper bound and a lower
// bound: true when no value can lie in or between them. Two touching open
// endpoints at the same value are separated; one closed endpoint suffices to
// make them adjoin.
func separated[T cmp.Ordered](up, lo Bound[T]) bool {
	if up.Value != lo.Value {
		return up.Value < lo.Value
	}
	return !up.Closed && !lo.Closed
}

// Contains reports whether val lies within the interval.
func (iv Interval[T]) Contains(val T) bool {
	return iv.nonEmpty && !iv.Below(val) && !iv.Above(val)
}

// Below reports whether every value of the interval is strictly less than
// val. It is false for the empty interval, which has no values to compare.
func (iv Interval[T]) Below(val T) bool {
	if !iv.nonEmpty {
		return false
	}
	if iv.upper.Value != val {
		return iv.upper.Value < val
	}
	return !iv.upper.Closed
}

// Above reports whether every value of the interval is strictly greater than
// val. It is false for the empty interval.
func (iv Interval[T]) Above(val T) bool {
	if !iv.nonEmpty {
		return false
	}
	if iv.lower.Value != val {
		return iv.lower.Value > val
	}
	return !iv.lower.Closed
}

// ContainsInterval reports whether every value of other also lies within
// this interval. The empty interval is contained in everything and contains
// only itself.
func (iv Interval[T]) ContainsInterval(other Interval[T]) bool {
	if !iv.nonEmpty {
		return other.IsEmpty()
	}
	if !other.nonEmpty {
		return true
	}
	return compareLower(iv.lower, other.lower) <= 0 && compareUpper(iv.upper, other.upper) >= 0
}

// Before reports whether every value of the interval is strictly less than
// every value of other. It is false when either interval is empty.
func (iv Interval[T]) Before(other Interval[T]) bool {
	if !iv.nonEmpty || !other.nonEmpty {
		return false
	}
	if iv.upper.Value != other.lower.Value {
		return iv.upper.Value < other.lower.Value
	}
	return !(iv.upper.Closed && other.lower.Closed)
}

// After reports whether every value of the interval is strictly greater than
// every value of other. It is false when either interval is empty.
func (iv Interval[T]) After(other Interval[T]) bool {
	return other.Before(iv)
}

// Overlaps reports whether the two intervals share at least one value.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return iv.nonEmpty && other.nonEmpty && !iv.Before(other) && !iv.After(other)
}

// Mergeable reports whether the two intervals overlap or touch, so that
// their union forms a single contiguous interval. The empty interval is
// mergeable with anything.
func (iv Interval[T]) Mergeable(other Interval[T]) bool {
	if !iv.nonEmpty || !other.nonEmpty {
		return true
	}
	return !separated(iv.upper, other.lower) && !separated(other.upper, iv.lower)
}
