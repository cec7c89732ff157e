// Package slist provides a generic singly linked list container.
//
// A List owns a linear chain of nodes: the list owns the head node, and
// each node owns its successor. A cached tail reference and an
// incrementally maintained element count keep appends and size queries
// O(1) despite the structure being singly linked.
//
// Key features:
//   - O(1) insertion and removal at the front, O(1) append at the back
//   - O(1) size, front, and back access
//   - Positional insertion and removal via InsertAfter/EraseAfter
//   - In-place reversal with no extra allocation
//   - Value semantics: deep copy (Clone/Assign), O(1) move (Take), O(1) Swap
//   - Forward iteration via Iterator/ConstIterator or range-over-func (All)
//
// Basic usage:
//
//	l := slist.Of(10, 20, 30)
//	l.PushFront(5)                 // [5 10 20 30]
//	v, _ := l.PopBack()            // v == 30, list is [5 10 20]
//	l.Reverse()                    // [20 10 5]
//	for v := range l.All() {
//		fmt.Println(v)
//	}
//
// Accessors and removers on an empty list return ErrEmpty; positional
// operations given the end sentinel return ErrInvalidPosition. A failed
// operation never modifies the list.
//
// A List is not safe for concurrent use. Iterators are non-owning views:
// removing the node an iterator references invalidates that iterator, as
// does destroying or moving out the owning list. Insertions elsewhere in
// the chain leave existing iterators valid.
package slist
