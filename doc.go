// Package priority implements a generic priority queue backed by a binary
// heap. The queue maintains a collection of items of a single type under a
// user-provided comparison function and keeps the highest priority item
// retrievable in O(1) and removable in O(log n).
//
// The ordering is determined by a less function fixed at construction;
// less(a, b) should return true if a has higher priority than b. For
// element types with a total order, NewMin and NewMax build the usual
// min-heap and max-heap without writing a comparator by hand.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(log n) insertion, extraction, and arbitrary-position removal
//   - O(1) peek operations
//   - Destructive in-order iteration via Drain and iter.Seq
//   - Min/max convenience constructors for ordered element types
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := priority.New[int](func(a, b int) bool {
//	    return a < b
//	})
//
//	// Add items
//	pq.Push(5)
//	pq.Push(3)
//	pq.Push(7)
//
//	// Get the highest priority item
//	v, ok := pq.Peek()
//	if ok {
//	    fmt.Printf("Highest priority: %d\n", v)
//	}
//
//	// Remove and return the highest priority item
//	v, ok = pq.Pop()
//	if ok {
//	    fmt.Printf("Popped: %d\n", v)
//	}
//
//	// Consume everything in priority order
//	for v := range pq.Drain() {
//	    fmt.Println(v)
//	}
//
// Items that compare equal under the comparator pop in an unspecified
// relative order; callers that need a stable tie-break should encode it in
// the comparator.
//
// A Queue is not safe for concurrent use. Callers sharing a queue across
// goroutines must provide their own synchronization.
package priority
