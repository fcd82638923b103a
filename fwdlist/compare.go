// File: compare.go
// Role: Free equality and lexicographic ordering over whole lists.
// Conventions:
//   - A nil *List compares as an empty list.
//   - Ordering is lexicographic; a proper prefix orders before the longer list.
//   - Greater(a, b) is Less(b, a); the other relations derive from Less only,
//     so they stay consistent for any strict weak order on T.

package fwdlist

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same length and equal elements in
// the same order.
// Complexity: O(min(len(a), len(b))) after an O(1) size check.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element equality, for element
// types that are not comparable.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if sizeOf(a) != sizeOf(b) {
		return false
	}
	for x, y := first(a), first(b); x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}

	return true
}

// Compare returns -1, 0 or +1 as a orders before, equal to, or after b
// lexicographically.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return compareNodes(first(a), first(b), func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		default:
			return 0
		}
	})
}

// CompareWith is Compare driven by a gods comparator such as
// utils.IntComparator or utils.StringComparator.
func CompareWith[T any](a, b *List[T], c utils.Comparator) int {
	return compareNodes(first(a), first(b), func(x, y T) int { return c(x, y) })
}

// Less reports whether a orders strictly before b.
func Less[T constraints.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// Greater reports whether a orders strictly after b.
func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

func compareNodes[T any](x, y *node[T], cmp func(x, y T) int) int {
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

func first[T any](l *List[T]) *node[T] {
	if l == nil {
		return nil
	}
	return l.head.next
}

func sizeOf[T any](l *List[T]) int {
	if l == nil {
		return 0
	}
	return l.size
}
