package disjointset

import "iter"

// Count returns the current number of disjoint subsets. The value is
// maintained incrementally, so the call is O(1).
func (d *DisjointSet[T]) Count() int {
	return d.count
}

// SubsetOf returns every element that shares a subset with elem, including
// elem itself. It returns nil when elem was never registered.
//
// The listing is derived by a full scan grouping indices by resolved root;
// element order within the result is unspecified.
func (d *DisjointSet[T]) SubsetOf(elem T) []T {
	idx, ok := d.ids[elem]
	if !ok {
		return nil
	}

	root := d.find(idx)
	members := make([]T, 0, d.sizeOfRoot(root))
	for i := range d.nodes {
		if d.find(Index(i)) == root {
			members = append(members, d.elems[i])
		}
	}
	return members
}

// SubsetSize returns the cardinality of the subset containing elem without
// materializing it. It returns 0 when elem was never registered.
//
// Under UnionBySize the answer is read from the root weight in O(1); under
// UnionByRank it requires an O(N) scan.
func (d *DisjointSet[T]) SubsetSize(elem T) int {
	idx, ok := d.ids[elem]
	if !ok {
		return 0
	}
	return d.sizeOfRoot(d.find(idx))
}

// sizeOfRoot returns the number of indices whose subset is rooted at root.
func (d *DisjointSet[T]) sizeOfRoot(root Index) int {
	if d.policy == UnionBySize {
		return d.nodes[root].weight
	}

	size := 0
	for i := range d.nodes {
		if d.find(Index(i)) == root {
			size++
		}
	}
	return size
}

// Subsets returns an iterator yielding one (root, members) pair per subset.
// The grouping is recomputed on every range, so the sequence is restartable
// and always reflects the current state. Enumeration order is unspecified:
// roots are an artifact of the internal forest, not part of the contract.
func (d *DisjointSet[T]) Subsets() iter.Seq2[Index, []T] {
	return func(yield func(Index, []T) bool) {
		for root, members := range d.groupByRoot() {
			if !yield(root, members) {
				return
			}
		}
	}
}

// groupByRoot buckets every registered element under its resolved root.
func (d *DisjointSet[T]) groupByRoot() map[Index][]T {
	groups := make(map[Index][]T, d.count)
	for i, elem := range d.elems {
		root := d.find(Index(i))
		groups[root] = append(groups[root], elem)
	}
	return groups
}
