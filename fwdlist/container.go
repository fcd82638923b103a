package fwdlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// List satisfies the gods container contract (Empty, Size, Clear, Values, String).
var _ containers.Container = (*List[int])(nil)

// Values returns the elements in order as untyped values, for consumers of
// containers.Container. Prefer Slice for typed access.
// Complexity: O(n)
func (l *List[T]) Values() []interface{} {
	out := make([]interface{}, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the list as "fwdlist[v1 v2 …]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("fwdlist[")
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')

	return sb.String()
}
