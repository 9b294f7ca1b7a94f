// Package interval implements endpoint arithmetic over generic ordered
// intervals: containment and overlap predicates, merging, intersection and
// spanning, with open and closed bounds tracked per endpoint.
//
// An Interval is an immutable value; every combinator returns a new value.
// The empty interval is a first-class citizen and behaves as the neutral
// element for Merge and Span and as the absorbing element for Intersect.
package interval

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrInvalidBounds is returned by constructors when the lower bound exceeds
// the upper one, or when a degenerate single-point interval carries an open
// endpoint.
var ErrInvalidBounds = errors.New("invalid interval bounds")

// ErrDisjointIntervals is returned by Merge when the two intervals neither
// overlap nor touch, so no single interval can cover exactly both.
var ErrDisjointIntervals = errors.New("intervals are disjoint")

// Bound is one endpoint of an interval: a value plus whether the endpoint
// itself belongs to the interval.
type Bound[T cmp.Ordered] struct {
	Value  T
	Closed bool
}

// Interval is a set of consecutive values between two bounds, possibly
// empty. The zero value is the empty interval.
type Interval[T cmp.Ordered] struct {
	lower, upper Bound[T]
	nonEmpty     bool
}

// Empty returns the empty interval.
func Empty[T cmp.Ordered]() Interval[T] {
	return Interval[T]{}
}

// Single returns the degenerate interval [val,val] holding exactly one value.
func Single[T cmp.Ordered](val T) Interval[T] {
	return Interval[T]{
		lower:    Bound[T]{Value: val, Closed: true},
		upper:    Bound[T]{Value: val, Closed: true},
		nonEmpty: true,
	}
}

// Closed returns the interval [lo,up] including both endpoints.
func Closed[T cmp.Ordered](lo, up T) (Interval[T], error) {
	return newChecked(lo, true, up, true)
}

// Open returns the interval (lo,up) excluding both endpoints.
func Open[T cmp.Ordered](lo, up T) (Interval[T], error) {
	return newChecked(lo, false, up, false)
}

// LowerClosed returns the half-open interval [lo,up) including only the
// lower endpoint.
func LowerClosed[T cmp.Ordered](lo, up T) (Interval[T], error) {
	return newChecked(lo, true, up, false)
}

// UpperClosed returns the half-open interval (lo,up] including only the
// upper endpoint.
func UpperClosed[T cmp.Ordered](lo, up T) (Interval[T], error) {
	return newChecked(lo, false, up, true)
}

// FromBounds assembles an interval from two explicit endpoints.
func FromBounds[T cmp.Ordered](lower, upper Bound[T]) (Interval[T], error) {
	return newChecked(lower.Value, lower.Closed, upper.Value, upper.Closed)
}

// newChecked validates the bound pair and builds the interval.
func newChecked[T cmp.Ordered](lo T, loClosed bool, up T, upClosed bool) (Interval[T], error) {
	if lo > up {
		return Interval[T]{}, fmt.Errorf("%w: lower %v exceeds upper %v", ErrInvalidBounds, lo, up)
	}
	if lo == up && (!loClosed || !upClosed) {
		return Interval[T]{}, fmt.Errorf("%w: single point %v must have closed bounds", ErrInvalidBounds, lo)
	}

	return Interval[T]{
		lower:    Bound[T]{Value: lo, Closed: loClosed},
		upper:    Bound[T]{Value: up, Closed: upClosed},
		nonEmpty: true,
	}, nil
}

// normalized builds an interval from possibly disordered bounds: the pair is
// reordered when needed and a degenerate point with an open endpoint
// collapses to the empty interval. Used by transformations whose inputs are
// already valid intervals.
func normalized[T cmp.Ordered](lo T, loClosed bool, up T, upClosed bool) Interval[T] {
	if lo > up {
		lo, up = up, lo
		loClosed, upClosed = upClosed, loClosed
	}
	if lo == up && !(loClosed && upClosed) {
		return Interval[T]{}
	}

	return Interval[T]{
		lower:    Bound[T]{Value: lo, Closed: loClosed},
		upper:    Bound[T]{Value: up, Closed: upClosed},
		nonEmpty: true,
	}
}

// IsEmpty reports whether the interval contains no values.
func (iv Interval[T]) IsEmpty() bool {
	return !iv.nonEmpty
}

// IsSingle reports whether the interval contains exactly one value.
func (iv Interval[T]) IsSingle() bool {
	return iv.nonEmpty && iv.lower.Value == iv.upper.Value
}

// Lower returns the lower endpoint. The second return value is false for the
// empty interval, which has no endpoints.
func (iv Interval[T]) Lower() (Bound[T], bool) {
	return iv.lower, iv.nonEmpty
}

// Upper returns the upper endpoint. The second return value is false for the
// empty interval.
func (iv Interval[T]) Upper() (Bound[T], bool) {
	return iv.upper, iv.nonEmpty
}

// Bounds returns both endpoints at once. The last return value is false for
// the empty interval.
func (iv Interval[T]) Bounds() (lower, upper Bound[T], ok bool) {
	return iv.lower, iv.upper, iv.nonEmpty
}

// Merge returns the single interval covering exactly the values of both
// intervals. It returns ErrDisjointIntervals when the inputs neither overlap
// nor touch, since their union would not be a contiguous interval. Merging
// with the empty interval returns the other operand unchanged.
func (iv Interval[T]) Merge(other Interval[T]) (Interval[T], error) {
	if !iv.Mergeable(other) {
		return Interval[T]{}, fmt.Errorf("%w: %s and %s", ErrDisjointIntervals, iv, other)
	}
	return iv.Span(other), nil
}

// Span returns the smallest interval covering both intervals, bridging any
// gap between them. Spanning with the empty interval returns the other
// operand unchanged.
func (iv Interval[T]) Span(other Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}

	lower := iv.lower
	if compareLower(other.lower, lower) < 0 {
		lower = other.lower
	}

	upper := iv.upper
	if compareUpper(other.upper, upper) > 0 {
		upper = other.upper
	}

	return Interval[T]{lower: lower, upper: upper, nonEmpty: true}
}

// Intersect returns the interval of values present in both intervals, which
// is empty when they do not overlap.
func (iv Interval[T]) Intersect(other Interval[T]) Interval[T] {
	if iv.IsEmpty() || other.IsEmpty() || iv.Before(other) || iv.After(other) {
		return Interval[T]{}
	}

	lower := iv.lower
	if compareLower(other.lower, lower) > 0 {
		lower = other.lower
	}

	upper := iv.upper
	if compareUpper(other.upper, upper) < 0 {
		upper = other.upper
	}

	return Interval[T]{lower: lower, upper: upper, nonEmpty: true}
}

// String renders the interval in mathematical notation, e.g. "[3,5)" or "Ø"
// for the empty interval.
func (iv Interval[T]) String() string {
	if iv.IsEmpty() {
		return "Ø"
	}

	open, closing := '[', ']'
	if !iv.lower.Closed {
		open = '('
	}
	if !iv.upper.Closed {
		closing = ')'
	}
	return fmt.Sprintf("%c%v,%v%c", open, iv.lower.Value, iv.upper.Value, closing)
}
