package slist

// node is a single chain link: one element plus ownership of the next
// link. A node has exactly one predecessor at all times, either the
// list's head slot or another node's next field. The chain is strictly
// linear; nothing ever links backward or shares a successor.
type node[T any] struct {
	data T
	next *node[T]
}

// newNode allocates a node holding v with no successor.
func newNode[T any](v T) *node[T] {
	return &node[T]{data: v}
}

// newNodeFunc allocates a node and lets build construct the element
// directly in the node's storage. A nil build leaves the zero value.
func newNodeFunc[T any](build func(*T)) *node[T] {
	n := &node[T]{}
	if build != nil {
		build(&n.data)
	}
	return n
}
