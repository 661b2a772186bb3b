package priority_test

import (
	"fmt"

	"github.com/davidvella/priority"
)

// ExampleNewMin demonstrates using the queue as a min-heap.
func ExampleNewMin() {
	// Smaller values pop first.
	pq := priority.NewMin(5, 3, 7)

	// Peek at the highest priority item.
	v, ok := pq.Peek()
	if ok {
		fmt.Printf("Highest priority: %d\n", v)
	}

	// Pop items in priority order.
	for v := range pq.Drain() {
		fmt.Printf("Popped: %d\n", v)
	}

	// Output:
	// Highest priority: 3
	// Popped: 3
	// Popped: 5
	// Popped: 7
}

// ExampleNewMax demonstrates using the queue as a max-heap.
func ExampleNewMax() {
	// Larger values pop first.
	pq := priority.NewMax(10, 20, 15)

	// Swap out the current front for a new value.
	old, _ := pq.Replace(25)
	fmt.Printf("Replaced: %d\n", old)

	for v := range pq.Drain() {
		fmt.Println(v)
	}

	// Output:
	// Replaced: 20
	// 25
	// 15
	// 10
}

// ExampleNew demonstrates using the queue with a custom type.
func ExampleNew() {
	type Task struct {
		Priority int
		Name     string
	}

	// Order tasks by priority.
	pq := priority.New[Task](func(a, b Task) bool {
		return a.Priority < b.Priority
	})

	pq.Push(Task{Priority: 2, Name: "Low priority"})
	pq.Push(Task{Priority: 1, Name: "High priority"})

	// Process tasks in priority order.
	for task := range pq.Drain() {
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 1)
	// Processing: Low priority (priority 2)
}
