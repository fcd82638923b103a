// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors, O(1) getters, cursor factories and range iteration.
// Policy:
//   - No mutation of an existing list here; From/FromSeq only build fresh ones.
//   - Every exported function documents complexity.

package fwdlist

import (
	"iter"
	"slices"
)

// From returns a List holding values in the given order.
//
// Implementation:
//   - Stage 1: Allocate an empty List and keep a tail cursor on its anchor.
//   - Stage 2: Link each value after the tail and move the tail forward.
//
// Behavior highlights:
//   - The list is not visible to the caller until it is complete.
//   - Values are copied by assignment; pointers inside T are shared.
//
// Inputs:
//   - values: elements in front-to-back order; may be empty.
//
// Returns:
//   - *List[T]: a fresh list with Size() == len(values).
//
// Complexity:
//   - Time O(n), Space O(n).
func From[T any](values ...T) *List[T] {
	return build(slices.Values(values))
}

// FromSeq returns a List holding every value yielded by seq, in order.
// A nil seq yields an empty list.
//
// If seq panics, no list is returned and nothing outside the partial chain
// was touched.
//
// Complexity: O(n).
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	if seq == nil {
		return New[T]()
	}
	return build(seq)
}

// build links every value of seq after a moving tail cursor.
func build[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	tail := &l.head
	for v := range seq {
		tail = l.linkAfter(tail, v)
	}

	return l
}

// Size returns the number of elements.
// Complexity: O(1).
func (l *List[T]) Size() int { return l.size }

// Empty reports whether the list has no elements.
// Complexity: O(1).
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element and true, or the zero value and false if
// the list is empty.
// Complexity: O(1).
func (l *List[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}

	return l.head.next.value, true
}

// Begin returns a mutable cursor at the first element, equal to End() if the
// list is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{n: l.head.next} }

// End returns the past-the-end cursor.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// CBegin returns a read-only cursor at the first element.
func (l *List[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{n: l.head.next} }

// CEnd returns the read-only past-the-end cursor.
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

// BeforeBegin returns a cursor at the anchor, the position just before the
// first element. It is the insert/erase point for the front of the list and
// must not be dereferenced.
//
// Complexity: O(1).
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head, anchor: true}
}

// CBeforeBegin is the read-only form of BeforeBegin.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head, anchor: true}
}

// All returns an iterator over the elements from front to back.
// Every call starts a fresh pass. The list must not be modified during a pass
// except through the value pointers themselves.
//
// Complexity: O(n) per pass.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements in order as a new slice.
// Complexity: O(n).
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
