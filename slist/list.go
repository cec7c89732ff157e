package slist

import "errors"

// Errors returned by list operations.
var (
	// ErrEmpty is returned by accessors and removers that need at least
	// one element when the list has none.
	ErrEmpty = errors.New("list is empty")

	// ErrInvalidPosition is returned by positional operations given the
	// end sentinel, or by EraseAfter when the position has no successor.
	ErrInvalidPosition = errors.New("invalid list position")
)

// List is a singly linked sequence of elements of type T.
//
// The zero value is ready to use, but New and Of are the usual
// constructors. The list owns its nodes: head owns the first node and
// each node owns the next. tail is a cache into the owned chain, never
// an independent owner. size is maintained incrementally and is never
// recomputed by traversal.
//
// Invariants, before and after every exported operation:
//   - size == 0 iff head == nil iff tail == nil
//   - if size > 0, head reaches tail in exactly size-1 steps and
//     tail.next == nil
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of creates a list holding the given values in order.
// Equivalent to repeated PushBack on an empty list.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the list contains no elements. O(1).
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns a pointer to the first element. The pointer stays valid
// until the element's node is removed. Returns ErrEmpty on an empty
// list. O(1).
func (l *List[T]) Front() (*T, error) {
	if l.head == nil {
		return nil, ErrEmpty
	}
	return &l.head.data, nil
}

// Back returns a pointer to the last element. Returns ErrEmpty on an
// empty list. O(1) via the cached tail.
func (l *List[T]) Back() (*T, error) {
	if l.tail == nil {
		return nil, ErrEmpty
	}
	return &l.tail.data, nil
}

// Clone returns a deep copy: an independent chain of equal length and
// equal values, built front-to-back. Mutating either list afterward
// never affects the other. O(N).
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.data)
	}
	return c
}

// Assign replaces l's contents with a deep copy of src. Implemented as
// clone-then-swap: the copy is built in full before l is touched, so if
// building it panics (e.g. allocation failure), l is unchanged.
// Assigning a list to itself is a no-op. O(N) in src's size.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.Swap(src.Clone())
}

// Take moves src's contents into l in O(1), releasing whatever l held.
// src is left exactly empty, matching a default-constructed list.
// Taking from itself is a no-op.
func (l *List[T]) Take(src *List[T]) {
	if l == src {
		return
	}
	l.head = src.head
	l.tail = src.tail
	l.size = src.size
	src.head = nil
	src.tail = nil
	src.size = 0
}

// Swap exchanges the contents of two lists in O(1). Only the head, tail
// and size fields move; no node or element is touched.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}
