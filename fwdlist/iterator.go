// File: iterator.go
// Role: Forward cursors over a List chain, in a mutable and a read-only flavor.
// Positions:
//   - anchor: the List's embedded head node (before-begin); never dereferenced.
//   - node:   a real element.
//   - end:    n == nil; also the zero (singular) value.
// Equality:
//   - Node identity. Two positions are equal iff they reference the same node,
//     or both are past-the-end.

package fwdlist

// Position is implemented by Iterator and ConstIterator only.
// InsertAfter, EraseAfter and the Equal methods accept either flavor.
type Position[T any] interface {
	position() (n *node[T], anchor bool)
}

// Iterator is a mutable forward cursor. Dereferencing it yields a reference
// to the element that can be written through Ptr or Set.
type Iterator[T any] struct {
	n      *node[T]
	anchor bool
}

// ConstIterator is a read-only forward cursor.
type ConstIterator[T any] struct {
	n      *node[T]
	anchor bool
}

func (it Iterator[T]) position() (*node[T], bool)      { return it.n, it.anchor }
func (it ConstIterator[T]) position() (*node[T], bool) { return it.n, it.anchor }

// Const converts it to a read-only cursor at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n, anchor: it.anchor}
}

// Equal reports whether it and other reference the same node, or are both
// past-the-end. A nil other is treated as past-the-end.
func (it Iterator[T]) Equal(other Position[T]) bool { return samePosition(it.n, other) }

// NotEqual is the negation of Equal.
func (it Iterator[T]) NotEqual(other Position[T]) bool { return !it.Equal(other) }

// IsEnd reports whether it is past-the-end (or singular).
func (it Iterator[T]) IsEnd() bool { return it.n == nil }

// IsAnchor reports whether it sits at the before-begin position.
func (it Iterator[T]) IsAnchor() bool { return it.n != nil && it.anchor }

// Inc advances it to the next position and returns the advanced cursor.
// Panics with ErrEndPosition if it is past-the-end.
func (it *Iterator[T]) Inc() Iterator[T] {
	it.n = advance(it.n)
	it.anchor = false
	return *it
}

// PostInc advances it to the next position and returns the cursor as it was
// before advancing.
// Panics with ErrEndPosition if it is past-the-end.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.Inc()
	return prev
}

// Value returns a copy of the element at it.
// Panics with ErrEndPosition at end and ErrAnchorDereference at the anchor.
func (it Iterator[T]) Value() T { return *deref(it.n, it.anchor) }

// Ptr returns a pointer to the element at it. The pointer stays valid while
// the node is linked into its list.
// Panics with ErrEndPosition at end and ErrAnchorDereference at the anchor.
func (it Iterator[T]) Ptr() *T { return deref(it.n, it.anchor) }

// Set overwrites the element at it with v.
// Panics with ErrEndPosition at end and ErrAnchorDereference at the anchor.
func (it Iterator[T]) Set(v T) { *deref(it.n, it.anchor) = v }

// Equal reports whether it and other reference the same node, or are both
// past-the-end. A nil other is treated as past-the-end.
func (it ConstIterator[T]) Equal(other Position[T]) bool { return samePosition(it.n, other) }

// NotEqual is the negation of Equal.
func (it ConstIterator[T]) NotEqual(other Position[T]) bool { return !it.Equal(other) }

// IsEnd reports whether it is past-the-end (or singular).
func (it ConstIterator[T]) IsEnd() bool { return it.n == nil }

// IsAnchor reports whether it sits at the before-begin position.
func (it ConstIterator[T]) IsAnchor() bool { return it.n != nil && it.anchor }

// Inc advances it and returns the advanced cursor.
// Panics with ErrEndPosition if it is past-the-end.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	it.n = advance(it.n)
	it.anchor = false
	return *it
}

// PostInc advances it and returns the cursor as it was before advancing.
// Panics with ErrEndPosition if it is past-the-end.
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	prev := *it
	it.Inc()
	return prev
}

// Value returns a copy of the element at it.
// Panics with ErrEndPosition at end and ErrAnchorDereference at the anchor.
func (it ConstIterator[T]) Value() T { return *deref(it.n, it.anchor) }

func samePosition[T any](n *node[T], other Position[T]) bool {
	if other == nil {
		return n == nil
	}
	on, _ := other.position()
	return n == on
}

func advance[T any](n *node[T]) *node[T] {
	if n == nil {
		panic(ErrEndPosition)
	}
	return n.next
}

func deref[T any](n *node[T], anchor bool) *T {
	if n == nil {
		panic(ErrEndPosition)
	}
	if anchor {
		panic(ErrAnchorDereference)
	}
	return &n.value
}
