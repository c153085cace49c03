package collections

import "fmt"

const minDequeCapacity = 8

// Deque is a double-ended queue backed by a growable ring buffer.
// The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// NewDeque returns an empty deque with room for at least capacity elements.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < minDequeCapacity {
		capacity = minDequeCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int { return d.count }

// IsEmpty reports whether the deque holds zero elements.
func (d *Deque[T]) IsEmpty() bool { return d.count == 0 }

// PushBack appends item at the tail.
func (d *Deque[T]) PushBack(item T) {
	d.grow()
	d.buf[d.index(d.count)] = item
	d.count++
}

// PushFront inserts item at the head.
func (d *Deque[T]) PushFront(item T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = item
	d.count++
}

// PopFront removes and returns the head element.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, fmt.Errorf("pop front of empty deque: %w", ErrEmpty)
	}
	item := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return item, nil
}

// PopBack removes and returns the tail element.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, fmt.Errorf("pop back of empty deque: %w", ErrEmpty)
	}
	i := d.index(d.count - 1)
	item := d.buf[i]
	d.buf[i] = zero
	d.count--
	return item, nil
}

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, fmt.Errorf("front of empty deque: %w", ErrEmpty)
	}
	return d.buf[d.head], nil
}

// Back returns the tail element without removing it.
func (d *Deque[T]) Back() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, fmt.Errorf("back of empty deque: %w", ErrEmpty)
	}
	return d.buf[d.index(d.count-1)], nil
}

// Values returns a copy of the elements ordered head to tail.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.count)
	for i := 0; i < d.count; i++ {
		out[i] = d.buf[d.index(i)]
	}
	return out
}

func (d *Deque[T]) index(offset int) int {
	return (d.head + offset) % len(d.buf)
}

// grow doubles the buffer when full, unwrapping elements so head is 0.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size < minDequeCapacity {
		size = minDequeCapacity
	}
	buf := make([]T, size)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}
