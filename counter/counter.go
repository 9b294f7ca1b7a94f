// Package counter provides a generic frequency multiset: a thin map wrapper
// that counts recurring values and reports the most common ones.
package counter

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Counter tallies occurrences of comparable values using a map[T]int
// internally. This type is mutable: methods like Add and Subtract modify the
// counter in place. A value absent from the map has an implicit count of 0.
type Counter[T comparable] map[T]int

// Entry pairs a counted value with its occurrence count.
type Entry[T comparable] struct {
	Value T
	Count int
}

// New creates a new Counter and optionally tallies the provided values.
//
// Parameters:
//   - vals: zero or more values to count immediately.
//
// Returns:
//   - A Counter with one count per occurrence of each provided value.
func New[T comparable](vals ...T) Counter[T] {
	c := make(Counter[T])
	c.Add(vals...)
	return c
}

// Collect creates a Counter by tallying every value yielded by seq.
func Collect[T comparable](seq iter.Seq[T]) Counter[T] {
	c := make(Counter[T])
	for val := range seq {
		c[val]++
	}
	return c
}

// Add increments the count of each given value by one.
//
// This method modifies the Counter in place.
func (c Counter[T]) Add(vals ...T) {
	for _, val := range vals {
		c[val]++
	}
}

// AddCount increments the count of val by n. A non-positive resulting count
// removes the value entirely, so AddCount with a negative n acts as a
// saturating decrement.
func (c Counter[T]) AddCount(val T, n int) {
	total := c[val] + n
	if total <= 0 {
		delete(c, val)
		return
	}
	c[val] = total
}

// Get returns the count recorded for val, or 0 when val was never counted.
func (c Counter[T]) Get(val T) int {
	return c[val]
}

// Total returns the sum of all counts.
func (c Counter[T]) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Merge adds every count from other into this Counter.
//
// This method modifies the Counter in place; other is left untouched.
func (c Counter[T]) Merge(other Counter[T]) {
	for val, n := range other {
		c[val] += n
	}
}

// Subtract removes other's counts from this Counter. Values whose count
// drops to zero or below are deleted; values only present in other are
// ignored.
func (c Counter[T]) Subtract(other Counter[T]) {
	for val, n := range other {
		c.AddCount(val, -n)
	}
}

// MostCommon returns all counted values ordered by descending count. Values
// with equal counts appear in an arbitrary but stable-per-call order.
//
// Returns:
//   - A slice of Entry values, most frequent first.
func (c Counter[T]) MostCommon() []Entry[T] {
	entries := make([]Entry[T], 0, len(c))
	for val, n := range c {
		entries = append(entries, Entry[T]{Value: val, Count: n})
	}

	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries
}

// ToIter returns an iterator over all (value, count) pairs in the counter.
func (c Counter[T]) ToIter() iter.Seq2[T, int] {
	return maps.All(c)
}
