package collections

import "fmt"

// Stack is a LIFO container backed by a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top of the stack.
// Returns an error wrapping ErrEmpty if the stack has no elements.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, fmt.Errorf("pop from empty stack: %w", ErrEmpty)
	}
	top := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return top, nil
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("peek at empty stack: %w", ErrEmpty)
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds zero elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Values returns a copy of the elements ordered bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
