package disjointset

// Find returns the representative (root) Index of the subset containing idx.
// Two indices are in the same subset iff Find returns the same root for both.
//
// Find applies full path compression: after the root is located, every node
// visited on the way is re-pointed directly at it, so repeated calls with the
// same argument are O(1) until the next Union. Compression never changes
// which root an index resolves to, only how many links the walk follows.
//
// It returns ErrIndexOutOfRange if idx was never produced by Register.
func (d *DisjointSet[T]) Find(idx Index) (Index, error) {
	if err := d.checkIndex(idx); err != nil {
		return 0, err
	}
	return d.find(idx), nil
}

// find resolves idx to its root and compresses the traversed path. The index
// must already be validated.
func (d *DisjointSet[T]) find(idx Index) Index {
	root := idx
	for d.nodes[root].parent != root {
		root = d.nodes[root].parent
	}

	for d.nodes[idx].parent != root {
		idx, d.nodes[idx].parent = d.nodes[idx].parent, root
	}
	return root
}

// Union merges the subsets containing a and b. It returns true when a merge
// occurred and false when both indices already shared a subset, in which
// case nothing changes.
//
// The root with the smaller weight is attached under the root with the
// larger one. On equal weights under UnionByRank, a's root wins and its rank
// grows by one; under UnionBySize sizes are added instead. A true merge
// decreases Count by exactly one.
//
// It returns ErrIndexOutOfRange if either index was never produced by
// Register.
func (d *DisjointSet[T]) Union(a, b Index) (bool, error) {
	if err := d.checkIndex(a); err != nil {
		return false, err
	}
	if err := d.checkIndex(b); err != nil {
		return false, err
	}
	return d.union(a, b), nil
}

// union merges the subsets rooted at the (already validated) indices a and b.
func (d *DisjointSet[T]) union(a, b Index) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}

	if d.nodes[ra].weight < d.nodes[rb].weight {
		ra, rb = rb, ra
	}
	d.nodes[rb].parent = ra

	if d.policy == UnionBySize {
		d.nodes[ra].weight += d.nodes[rb].weight
	} else if d.nodes[ra].weight == d.nodes[rb].weight {
		d.nodes[ra].weight++
	}

	d.count--
	return true
}

// Merge unions the subsets containing the elements a and b, registering
// either element first if it is not yet known. It returns true when a merge
// occurred and false when both elements already shared a subset.
func (d *DisjointSet[T]) Merge(a, b T) bool {
	return d.union(d.Register(a), d.Register(b))
}

// Connected reports whether the subsets containing indices a and b are one
// and the same.
//
// It returns ErrIndexOutOfRange if either index was never produced by
// Register.
func (d *DisjointSet[T]) Connected(a, b Index) (bool, error) {
	if err := d.checkIndex(a); err != nil {
		return false, err
	}
	if err := d.checkIndex(b); err != nil {
		return false, err
	}
	return d.find(a) == d.find(b), nil
}

// SameSet reports whether the elements a and b belong to the same subset.
// It returns false when either element was never registered; an unknown
// element is an expected query outcome, not an error.
func (d *DisjointSet[T]) SameSet(a, b T) bool {
	ia, ok := d.ids[a]
	if !ok {
		return false
	}

	ib, ok := d.ids[b]
	if !ok {
		return false
	}

	return d.find(ia) == d.find(ib)
}
