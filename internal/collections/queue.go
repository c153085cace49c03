package collections

import "fmt"

// Queue is a FIFO container built on a Deque. The zero value is ready to use.
type Queue[T any] struct {
	items Deque[T]
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends item at the tail of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the element at the head of the queue.
// Returns an error wrapping ErrEmpty if the queue has no elements.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.items.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("dequeue from empty queue: %w", ErrEmpty)
	}
	return q.items.PopFront()
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.items.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("peek at empty queue: %w", ErrEmpty)
	}
	return q.items.Front()
}

// IsEmpty reports whether the queue holds zero elements.
func (q *Queue[T]) IsEmpty() bool { return q.items.IsEmpty() }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.items.Len() }

// Values returns a copy of the elements ordered head to tail.
func (q *Queue[T]) Values() []T { return q.items.Values() }
