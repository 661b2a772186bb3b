package keyed

import "iter"

// entry is a heap slot that remembers its own position so key-based
// operations can find it in O(1).
type entry[K comparable, V any] struct {
	key   K
	value V
	index int
}

// Queue implements a priority queue whose items are addressable by key.
// Alongside the binary heap it keeps a map from key to heap slot, giving
// O(1) lookup and O(log n) update or removal by key. The ordering is
// determined by the less function supplied at construction; less(a, b)
// reports whether a should come ahead of b.
type Queue[K comparable, V any] struct {
	entries []*entry[K, V]
	index   map[K]*entry[K, V]
	less    func(a, b V) bool
}

// New creates a new keyed priority queue with the given comparator.
func New[K comparable, V any](less func(a, b V) bool) *Queue[K, V] {
	return &Queue[K, V]{
		entries: make([]*entry[K, V], 0),
		index:   make(map[K]*entry[K, V]),
		less:    less,
	}
}

// Len returns the number of items in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.entries)
}

// IsEmpty reports whether the queue contains no items.
func (q *Queue[K, V]) IsEmpty() bool {
	return len(q.entries) == 0
}

// Get returns the value stored under key.
func (q *Queue[K, V]) Get(key K) (V, bool) {
	e, ok := q.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set adds a new key or updates an existing key's value. On update the
// entry is resifted in whichever direction its new priority requires.
func (q *Queue[K, V]) Set(key K, value V) {
	if e, ok := q.index[key]; ok {
		old := e.value
		e.value = value
		if q.less(value, old) {
			q.up(e.index)
		} else {
			q.down(e.index)
		}
		return
	}
	e := &entry[K, V]{
		key:   key,
		value: value,
		index: len(q.entries),
	}
	q.entries = append(q.entries, e)
	q.index[key] = e
	q.up(e.index)
}

// Remove removes the given key and returns its value.
func (q *Queue[K, V]) Remove(key K) (V, bool) {
	e, ok := q.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	i := e.index
	last := len(q.entries) - 1
	if i != last {
		q.swap(i, last)
		q.entries[last] = nil
		q.entries = q.entries[:last]
		// The entry moved into the hole came from a leaf and can be out
		// of order in either direction.
		q.down(i)
		q.up(i)
	} else {
		q.entries[last] = nil
		q.entries = q.entries[:last]
	}

	delete(q.index, key)
	return e.value, true
}

// Peek returns the highest priority key and value without removing them.
func (q *Queue[K, V]) Peek() (K, V, bool) {
	if len(q.entries) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := q.entries[0]
	return e.key, e.value, true
}

// Pop removes and returns the highest priority key and value. The
// relative order in which items that compare equal under the comparator
// are popped is unspecified.
func (q *Queue[K, V]) Pop() (K, V, bool) {
	if len(q.entries) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := q.entries[0]
	q.Remove(e.key)
	return e.key, e.value, true
}

// Clear removes all items from the queue. The comparator is retained.
func (q *Queue[K, V]) Clear() {
	clear(q.entries)
	q.entries = q.entries[:0]
	clear(q.index)
}

// Drain returns an iterator that removes and yields key-value pairs in
// priority order until the queue is empty. Stopping early leaves the
// remaining items queued.
func (q *Queue[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// swap swaps the entries at index i and j.
func (q *Queue[K, V]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

// ahead compares the entries at index i and j.
func (q *Queue[K, V]) ahead(i, j int) bool {
	return q.less(q.entries[i].value, q.entries[j].value)
}

// up moves the entry at index i up to its proper position.
func (q *Queue[K, V]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.ahead(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i down to its proper position.
func (q *Queue[K, V]) down(i int) {
	for {
		first := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(q.entries) && q.ahead(left, first) {
			first = left
		}
		if right < len(q.entries) && q.ahead(right, first) {
			first = right
		}

		if first == i {
			break
		}

		q.swap(i, first)
		i = first
	}
}
