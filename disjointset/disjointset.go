// Package disjointset implements a disjoint-set (union-find) collection that
// partitions a universe of elements into dynamically merged, non-overlapping
// subsets and answers same-subset queries in near-constant amortized time.
//
// Elements are arbitrary comparable values. Each distinct element is assigned
// a dense internal Index on registration; the forest of parent links is kept
// in an index-addressed array, so all "pointers" are plain integers. Find
// applies full path compression and Union applies rank- or size-based
// tie-breaking, which together yield inverse-Ackermann amortized cost.
//
// The structure is merge-only: there is no way to remove an element or split
// a subset. It is not safe for concurrent use; callers requiring concurrent
// access must serialize externally. Note that Find (and every query built on
// it) compresses paths as a side effect, so even logically read-only calls
// mutate the internal topology. The resolved roots never change because of
// compression, only the traversal length does.
package disjointset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an operation receives an Index that was
// never produced by Register. Passing such an index is a programmer error;
// the structure is left untouched.
var ErrIndexOutOfRange = errors.New("index out of range")

// Index is the dense, zero-based identifier assigned to a registered element.
// Indices are stable for the lifetime of the structure: they are never reused
// and never renumbered.
type Index int

// Policy selects the tie-break rule applied when two subset roots of equal
// standing are merged. The choice affects internal weight bookkeeping only,
// never observable results.
type Policy int

const (
	// UnionByRank keeps, per root, an upper bound on its tree height and
	// attaches the shallower tree under the deeper one. This is the default.
	UnionByRank Policy = iota

	// UnionBySize keeps, per root, the element count of its tree and attaches
	// the smaller tree under the larger one. Under this policy SubsetSize is
	// answered in O(1) from the root weight.
	UnionBySize
)

// node is the per-index forest record. A node is a root when its parent is
// its own index. The weight is interpreted per the configured Policy: a rank
// (height bound) or a size (element count).
type node struct {
	parent Index
	weight int
}

// DisjointSet is a disjoint-set collection over elements of type T.
//
// The zero value is not usable; construct instances with New.
type DisjointSet[T comparable] struct {
	ids    map[T]Index // element -> dense index
	elems  []T         // inverse mapping, elems[i] is the element at Index i
	nodes  []node      // parent/weight forest, indexed by Index
	count  int         // live number of disjoint subsets
	policy Policy
}

// config holds construction options for a DisjointSet.
type config struct {
	capacity int
	policy   Policy
}

// Option configures a DisjointSet at construction time.
type Option func(*config)

// WithCapacity pre-sizes the internal registry and forest for the given
// number of elements. It is a pure performance hint with no semantic effect.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithPolicy selects the tie-break policy used by Union. The default is
// UnionByRank.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// New creates an empty DisjointSet. It accepts zero or more Option values to
// pre-size storage or select the tie-break policy.
func New[T comparable](opts ...Option) *DisjointSet[T] {
	cfg := config{policy: UnionByRank}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DisjointSet[T]{
		ids:    make(map[T]Index, cfg.capacity),
		elems:  make([]T, 0, cfg.capacity),
		nodes:  make([]node, 0, cfg.capacity),
		policy: cfg.policy,
	}
}

// Register adds elem as a new singleton subset and returns its Index. If elem
// is already registered the existing Index is returned and nothing changes.
//
// Registration never fails and grows the forest by at most one node.
func (d *DisjointSet[T]) Register(elem T) Index {
	if idx, ok := d.ids[elem]; ok {
		return idx
	}

	idx := Index(len(d.nodes))
	d.ids[elem] = idx
	d.elems = append(d.elems, elem)
	d.nodes = append(d.nodes, node{parent: idx, weight: d.initialWeight()})
	d.count++
	return idx
}

// initialWeight is the weight of a freshly created root: rank 0 under
// UnionByRank, size 1 under UnionBySize.
func (d *DisjointSet[T]) initialWeight() int {
	if d.policy == UnionBySize {
		return 1
	}
	return 0
}

// Add registers each of the given elements as its own singleton subset.
// Already-known elements are skipped.
func (d *DisjointSet[T]) Add(elems ...T) {
	for _, elem := range elems {
		d.Register(elem)
	}
}

// Lookup returns the Index previously assigned to elem. The second return
// value reports whether elem has been registered.
func (d *DisjointSet[T]) Lookup(elem T) (Index, bool) {
	idx, ok := d.ids[elem]
	return idx, ok
}

// Resolve returns the element registered at the given Index.
//
// It returns ErrIndexOutOfRange if idx was never produced by Register.
func (d *DisjointSet[T]) Resolve(idx Index) (T, error) {
	if err := d.checkIndex(idx); err != nil {
		var zero T
		return zero, err
	}
	return d.elems[idx], nil
}

// Contains reports whether elem has been registered.
func (d *DisjointSet[T]) Contains(elem T) bool {
	_, ok := d.ids[elem]
	return ok
}

// Len returns the number of registered elements.
func (d *DisjointSet[T]) Len() int {
	return len(d.elems)
}

// IsEmpty reports whether no elements have been registered.
func (d *DisjointSet[T]) IsEmpty() bool {
	return len(d.elems) == 0
}

// Clear removes every element and subset, resetting the structure to its
// freshly constructed state. The configured policy is retained.
func (d *DisjointSet[T]) Clear() {
	clear(d.ids)
	d.elems = d.elems[:0]
	d.nodes = d.nodes[:0]
	d.count = 0
}

// checkIndex validates that idx addresses a registered node.
func (d *DisjointSet[T]) checkIndex(idx Index) error {
	if idx < 0 || int(idx) >= len(d.nodes) {
		return fmt.Errorf("%w: %d (registered: %d)", ErrIndexOutOfRange, idx, len(d.nodes))
	}
	return nil
}
