// Package fwdlist defines the List container, its node chain and the
// New constructor.
//
// Ownership is strictly hierarchical: the List embeds its anchor node, the
// anchor links the first real node, and every node links exactly the node
// after it. Nothing else holds a link into the chain except iterators, which
// never own what they point at.
package fwdlist

// node is a single link of the chain.
// The anchor is a node too; its value field is never read.
type node[T any] struct {
	value T
	next  *node[T]
}

// release zeroes n after it has been unlinked so the value can be collected
// and a stale iterator on n reads as past-the-end on its next advance.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
}

// List is a singly-linked list of T with an embedded before-begin anchor.
//
// The zero value is an empty list ready to use. A List must not be copied by
// value after first use; use Clone, Assign or Swap.
//
// Invariant: size equals the number of nodes reachable from head.next, and
// size == 0 iff head.next == nil.
type List[T any] struct {
	head node[T] // anchor; head.next is the first element
	size int     // number of real nodes
}

// New returns an empty List.
// Complexity: O(1)
func New[T any]() *List[T] {
	return &List[T]{}
}
