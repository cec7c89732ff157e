package slist

import "iter"

// Iterator is a non-owning position in a list, granting read and write
// access to one element. The zero value is the end sentinel, one past
// the last node. Iterators compare by node identity: two iterators are
// equal exactly when they reference the same node (or are both the end
// sentinel), regardless of element values.
//
// Dereferencing the end sentinel (Value, Ref, Set, Next) is a
// precondition violation and panics; it is not a recoverable error.
// An iterator is invalidated when the node it references is removed or
// when the owning list is cleared, destroyed or moved out; insertions
// elsewhere in the chain do not disturb it.
type Iterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node, i.e. is not the
// end sentinel.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns an iterator to the following node, or the end sentinel
// if this is the last node.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Value returns a copy of the referenced element.
func (it Iterator[T]) Value() T {
	return it.n.data
}

// Ref returns a pointer to the referenced element, valid until the
// element's node is removed.
func (it Iterator[T]) Ref() *T {
	return &it.n.data
}

// Set overwrites the referenced element.
func (it Iterator[T]) Set(v T) {
	it.n.data = v
}

// Const narrows the iterator to a read-only view of the same position.
// There is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is a read-only position in a list. It behaves like
// Iterator but exposes no way to modify the referenced element. The
// zero value is the end sentinel.
type ConstIterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node.
func (it ConstIterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns an iterator to the following node, or the end sentinel.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

// Value returns a copy of the referenced element.
func (it ConstIterator[T]) Value() T {
	return it.n.data
}

// Begin returns an iterator to the first element, or the end sentinel
// if the list is empty. Traversal never consumes the list; calling
// Begin again yields a fresh pass over the same chain.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// End returns the end sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// ConstBegin returns a read-only iterator to the first element.
func (l *List[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head}
}

// ConstEnd returns the read-only end sentinel.
func (l *List[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// All returns an iterator over the element values in list order, for
// use with range. The list must not be mutated during the range.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}
