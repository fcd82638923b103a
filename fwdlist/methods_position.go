// File: methods_position.go
// Role: Insert and erase after an arbitrary cursor.
// Preconditions:
//   - pos belongs to this list. Ownership is not checked; a cursor from
//     another list splices into that list's chain and corrupts both sizes.
//   - pos is not past-the-end (ErrEndPosition).
//   - EraseAfter: a node follows pos (ErrNoSuccessor).

package fwdlist

// InsertAfter links a new node holding v directly after pos and returns a
// cursor to it. pos may be either cursor flavor, including BeforeBegin().
// Complexity: O(1)
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	prev := positionNode(pos)

	return Iterator[T]{n: l.linkAfter(prev, v)}
}

// EraseAfter unlinks and releases the node directly after pos and returns a
// cursor to the node that now follows pos (End() if none).
// Complexity: O(1)
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	prev := positionNode(pos)
	if prev.next == nil {
		panic(ErrNoSuccessor)
	}

	return Iterator[T]{n: l.unlinkAfter(prev)}
}

// positionNode resolves pos to the node it references.
func positionNode[T any](pos Position[T]) *node[T] {
	if pos == nil {
		panic(ErrEndPosition)
	}
	n, _ := pos.position()
	if n == nil {
		panic(ErrEndPosition)
	}

	return n
}

// linkAfter splices a new node holding v between prev and its successor.
func (l *List[T]) linkAfter(prev *node[T], v T) *node[T] {
	n := &node[T]{value: v, next: prev.next}
	prev.next = n
	l.size++

	return n
}

// unlinkAfter removes prev's successor, which must exist, and returns the
// node now following prev.
func (l *List[T]) unlinkAfter(prev *node[T]) *node[T] {
	victim := prev.next
	prev.next = victim.next
	l.size--
	victim.release()

	return prev.next
}
