package priority

import (
	"fmt"
	"iter"
)

// Queue implements a priority queue backed by a binary heap. The ordering
// is determined by the less function supplied at construction; less(a, b)
// reports whether a should come ahead of b.
type Queue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New creates a new priority queue with the given comparator and pushes
// any initial items in the order given. Building from n initial items
// costs O(n log n).
func New[T any](less func(a, b T) bool, items ...T) *Queue[T] {
	q := &Queue[T]{
		items: make([]T, 0, len(items)),
		less:  less,
	}
	for _, v := range items {
		q.Push(v)
	}
	return q
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue contains no items.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Peek returns the highest priority item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Push adds an item to the queue.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
	q.up(len(q.items) - 1)
}

// Pop removes and returns the highest priority item. The relative order in
// which items that compare equal under the comparator are popped is
// unspecified.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	v := q.items[0]
	n := len(q.items) - 1
	q.items[0] = q.items[n]
	q.shrink(n)
	q.down(0)
	return v, true
}

// RemoveAt removes and returns the item at position i in the backing
// array. It returns false if i is out of range.
func (q *Queue[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= len(q.items) {
		var zero T
		return zero, false
	}
	v := q.items[i]
	n := len(q.items) - 1
	if i != n {
		q.swap(i, n)
		q.shrink(n)
		// The item moved into position i came from a leaf and can be out
		// of order in either direction relative to its new neighbours.
		if !q.down(i) {
			q.up(i)
		}
	} else {
		q.shrink(n)
	}
	return v, true
}

// ReplaceAt removes and returns the item at position i and pushes v in its
// place. It returns false, without pushing, if i is out of range.
func (q *Queue[T]) ReplaceAt(i int, v T) (T, bool) {
	old, ok := q.RemoveAt(i)
	if !ok {
		var zero T
		return zero, false
	}
	q.Push(v)
	return old, true
}

// Replace removes and returns the highest priority item and pushes v in
// its place. It returns false, without pushing, if the queue is empty.
func (q *Queue[T]) Replace(v T) (T, bool) {
	return q.ReplaceAt(0, v)
}

// Clear removes all items from the queue. The comparator is retained.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Drain returns an iterator that removes and yields items in priority
// order until the queue is empty. Stopping early leaves the remaining
// items queued.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the backing array for diagnostics. The order shown is the
// internal heap layout, not pop order.
func (q *Queue[T]) String() string {
	return fmt.Sprintf("priority.Queue%v", q.items)
}

// shrink drops the last slot, zeroing it first so the queue does not pin
// the removed item.
func (q *Queue[T]) shrink(n int) {
	var zero T
	q.items[n] = zero
	q.items = q.items[:n]
}

// swap swaps the items at index i and j.
func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// up moves the item at index i up to its proper position.
func (q *Queue[T]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.less(q.items[i], q.items[parent]) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the item at index i down to its proper position. It reports
// whether the item moved.
func (q *Queue[T]) down(i int) bool {
	start := i
	for {
		first := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(q.items) && q.less(q.items[left], q.items[first]) {
			first = left
		}
		if right < len(q.items) && q.less(q.items[right], q.items[first]) {
			first = right
		}

		if first == i {
			break
		}

		q.swap(i, first)
		i = first
	}
	return i > start
}
