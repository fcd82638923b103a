// File: methods_clone.go
// Role: Value semantics: deep copy, assignment and O(1) exchange.
// Guarantee:
//   - Clone/Assign/AssignSeq build the complete new chain in a separate List
//     and only then Swap it in. If building panics, the receiver is untouched.
// Identity:
//   - Swap moves chains, not anchors: cursors to real elements follow their
//     elements into the other list; BeforeBegin() cursors stay with their list.

package fwdlist

import "iter"

// Clone returns a deep copy of l with the same elements in the same order.
// Elements are copied by assignment.
// Complexity: O(n)
func (l *List[T]) Clone() *List[T] {
	return build(l.All())
}

// Assign replaces the contents of l with a copy of rhs.
// Assigning a list to itself is a no-op; a nil rhs empties l.
// Complexity: O(len(l) + len(rhs))
func (l *List[T]) Assign(rhs *List[T]) {
	if l == rhs {
		return
	}
	if rhs == nil {
		l.Clear()
		return
	}
	l.adopt(rhs.Clone())
}

// AssignSeq replaces the contents of l with the values yielded by seq.
// If seq panics, l keeps its previous contents.
// Complexity: O(len(l) + n)
func (l *List[T]) AssignSeq(seq iter.Seq[T]) {
	l.adopt(FromSeq(seq))
}

// adopt swaps a fully built list into l and releases the previous chain.
func (l *List[T]) adopt(fresh *List[T]) {
	l.Swap(fresh)
	fresh.Clear()
}

// Swap exchanges the contents of l and other without touching any node.
// Complexity: O(1)
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b. It is its own inverse.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
