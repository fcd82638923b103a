// File: methods_front.go
// Role: Element lifecycle at the front of the list.
// All three operations go through the anchor, so they share the splice
// helpers in methods_position.go with InsertAfter/EraseAfter.

package fwdlist

// PushFront links a new node holding v as the first element.
// Complexity: O(1)
func (l *List[T]) PushFront(v T) {
	l.linkAfter(&l.head, v)
}

// PopFront unlinks and releases the first element.
// Panics with ErrEmptyList if the list is empty.
// Complexity: O(1)
func (l *List[T]) PopFront() {
	if l.head.next == nil {
		panic(ErrEmptyList)
	}
	l.unlinkAfter(&l.head)
}

// Clear removes every element, front to back, leaving an empty list.
// Cursors into the removed chain become invalid.
// Complexity: O(n)
func (l *List[T]) Clear() {
	for l.head.next != nil {
		l.unlinkAfter(&l.head)
	}
}
