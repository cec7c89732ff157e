package slist

// linkFront splices an already-allocated node in as the new head.
func (l *List[T]) linkFront(n *node[T]) {
	if l.head == nil {
		l.tail = n
	} else {
		n.next = l.head
	}
	l.head = n
	l.size++
}

// linkBack splices an already-allocated node in as the new tail.
func (l *List[T]) linkBack(n *node[T]) {
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PushFront inserts v at the front of the list. O(1).
func (l *List[T]) PushFront(v T) {
	l.linkFront(newNode(v))
}

// EmplaceFront inserts a new front element constructed in place: build
// receives a pointer to the new node's storage, already zeroed. A nil
// build inserts the zero value. Avoids copying a pre-built value for
// large element types. O(1).
func (l *List[T]) EmplaceFront(build func(*T)) {
	l.linkFront(newNodeFunc(build))
}

// PushBack appends v at the back of the list. O(1) via the cached tail.
func (l *List[T]) PushBack(v T) {
	l.linkBack(newNode(v))
}

// EmplaceBack appends a new element constructed in place, as
// EmplaceFront. O(1).
func (l *List[T]) EmplaceBack(build func(*T)) {
	l.linkBack(newNodeFunc(build))
}

// PopFront removes and returns the first element. Returns ErrEmpty on
// an empty list, leaving it untouched. Iterators to the removed node
// are invalidated. O(1).
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	n.next = nil // unlink so a stale iterator cannot pin the chain
	return n.data, nil
}

// PopBack removes and returns the last element. Returns ErrEmpty on an
// empty list. O(N): with no back-links, the node before tail is found
// by walking from head. This is the cost of keeping the structure
// singly linked; tail is cached precisely so that Back and PushBack do
// not pay it.
func (l *List[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	if l.head == l.tail {
		return l.PopFront()
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	n := l.tail
	prev.next = nil
	l.tail = prev
	l.size--
	return n.data, nil
}

// InsertAfter splices a new node holding v between pos's node and its
// successor, returning an iterator to the new node. If pos's node was
// the tail, the new node becomes the tail. Returns ErrInvalidPosition
// if pos is the end sentinel (there is no node to insert after).
// Existing iterators remain valid. O(1).
func (l *List[T]) InsertAfter(pos Iterator[T], v T) (Iterator[T], error) {
	return l.spliceAfter(pos, newNode(v))
}

// EmplaceAfter is InsertAfter with the element constructed in place, as
// EmplaceFront. O(1).
func (l *List[T]) EmplaceAfter(pos Iterator[T], build func(*T)) (Iterator[T], error) {
	return l.spliceAfter(pos, newNodeFunc(build))
}

func (l *List[T]) spliceAfter(pos Iterator[T], n *node[T]) (Iterator[T], error) {
	cur := pos.n
	if cur == nil {
		return Iterator[T]{}, ErrInvalidPosition
	}
	n.next = cur.next
	cur.next = n
	if l.tail == cur {
		l.tail = n
	}
	l.size++
	return Iterator[T]{n: n}, nil
}

// EraseAfter removes the node immediately following pos, returning an
// iterator to the node that now follows pos (possibly the end
// sentinel). Returns ErrInvalidPosition if pos is the end sentinel or
// pos's node has no successor. Iterators to the removed node are
// invalidated; all others remain valid. O(1).
func (l *List[T]) EraseAfter(pos Iterator[T]) (Iterator[T], error) {
	cur := pos.n
	if cur == nil || cur.next == nil {
		return Iterator[T]{}, ErrInvalidPosition
	}
	n := cur.next
	cur.next = n.next
	if l.tail == n {
		l.tail = cur
	}
	l.size--
	n.next = nil
	return Iterator[T]{n: cur.next}, nil
}

// Clear removes all elements, leaving the list in the default empty
// state. Nodes are unlinked iteratively so that an outstanding (now
// invalid) iterator cannot keep the whole chain reachable. O(N).
func (l *List[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Reverse reverses the element order in place by relinking the chain in
// a single pass; no nodes are allocated or freed and no element values
// move. The old head becomes the tail. A list shorter than two elements
// is left as is. O(N) time, O(1) extra space.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	var prev *node[T]
	cur := l.head
	l.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}
