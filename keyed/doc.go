// Package keyed implements a priority queue whose items are addressable
// by key. It pairs the binary heap from the parent package's design with a
// map from key to heap slot, so priorities can be looked up, updated, or
// removed by key without scanning the heap.
//
// Key features:
//   - Generic implementation supporting any comparable key type and any value type
//   - O(log n) insertion, deletion, and priority updates
//   - O(1) peek and key-based lookups
//   - Destructive in-order iteration via Drain and iter.Seq2
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := keyed.New[string, int](func(a, b int) bool {
//	    return a < b
//	})
//
//	// Add items
//	pq.Set("task1", 5)
//	pq.Set("task2", 3)
//	pq.Set("task3", 7)
//
//	// Get the highest priority item
//	key, value, ok := pq.Peek()
//	if ok {
//	    fmt.Printf("Highest priority: %s = %d\n", key, value)
//	}
//
//	// Update a priority
//	pq.Set("task1", 1)
//
//	// Remove a specific key
//	pq.Remove("task2")
//
//	// Consume everything in priority order
//	for key, value := range pq.Drain() {
//	    fmt.Printf("%s = %d\n", key, value)
//	}
//
// Setting an existing key replaces its value and resifts the entry, so a
// key appears in the queue at most once.
//
// A Queue is not safe for concurrent use. Callers sharing a queue across
// goroutines must provide their own synchronization.
package keyed
