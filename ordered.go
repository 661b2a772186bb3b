package priority

import "cmp"

// NewMin creates a queue over an ordered element type that pops the
// smallest item first, and pushes any initial items. This is the default
// ordering when no comparator is called for.
func NewMin[T cmp.Ordered](items ...T) *Queue[T] {
	return New(func(a, b T) bool { return a <= b }, items...)
}

// NewMax creates a queue over an ordered element type that pops the
// largest item first, and pushes any initial items.
func NewMax[T cmp.Ordered](items ...T) *Queue[T] {
	return New(func(a, b T) bool { return a >= b }, items...)
}

// Contains reports whether the queue holds an item equal to v. It scans
// the backing array in O(n); heap order cannot narrow the search for an
// arbitrary value.
func Contains[T comparable](q *Queue[T], v T) bool {
	for _, item := range q.items {
		if item == v {
			return true
		}
	}
	return false
}
