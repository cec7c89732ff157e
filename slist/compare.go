package slist

import "cmp"

// Equal reports whether two lists have the same length and equal
// elements in the same order. O(min(N, M)); a length mismatch is
// detected in O(1) from the cached sizes.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	an, bn := a.head, b.head
	for an != nil {
		if !eq(an.data, bn.data) {
			return false
		}
		an = an.next
		bn = bn.next
	}
	return true
}

// Compare lexicographically compares two lists element by element,
// returning -1 if a sorts before b, 0 if they are equal, and +1 if a
// sorts after b. When one list is a prefix of the other, the shorter
// list sorts first. The six relational comparisons all derive from the
// sign of the result.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison,
// which must return a negative, zero or positive value in the usual
// way.
func CompareFunc[T any](a, b *List[T], compare func(T, T) int) int {
	an, bn := a.head, b.head
	for an != nil && bn != nil {
		if c := compare(an.data, bn.data); c != 0 {
			return c
		}
		an = an.next
		bn = bn.next
	}
	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	default:
		return 0
	}
}
