// Package fwdlist provides a generic singly-linked list ("forward list")
// with a dummy anchor node, forward iterators and value-semantics copying.
//
// What:
//
//   - List[T]: a chain of exclusively-owned nodes hanging off an anchor node
//     embedded in the List itself. The anchor holds no value; its link is the
//     entry point of the chain, so inserting or erasing "after" a position is
//     the same O(1) splice whether the position is the anchor or a real node.
//   - Iterator[T] / ConstIterator[T]: lightweight, non-owning cursors over the
//     chain. Both implement Position[T], compare with each other, and a mutable
//     Iterator converts to a ConstIterator (never the reverse).
//   - Free comparisons: Equal, NotEqual, Less, Greater, LessOrEqual,
//     GreaterOrEqual, Compare, EqualFunc and CompareWith (gods comparators).
//
// Why:
//   - Front-heavy workloads (stacks, free lists, undo logs) without slice
//     reallocation.
//   - Stable element addresses: Ptr() on an iterator stays valid until that
//     node is erased.
//   - Splice-style editing through InsertAfter/EraseAfter at any cursor.
//
// Positions:
//
//	BeforeBegin()  ──►  Begin()  ──►  …  ──►  last  ──►  End()
//	 (anchor)          (first)                         (nil, past-the-end)
//
// The zero Iterator is singular and compares equal to End(). Dereferencing
// End() or the anchor, advancing End(), erasing past the last node and popping
// an empty list are precondition violations: they panic with ErrEndPosition,
// ErrAnchorDereference, ErrNoSuccessor or ErrEmptyList so the recovered value
// can be matched with errors.Is.
//
// Value semantics:
//
//	A List must not be copied by value once used: the anchor's address is part
//	of its identity. Use Clone, Assign and Swap instead. Clone and Assign build
//	the complete copy first and adopt it with an O(1) Swap, so a failure while
//	copying never leaves the destination half-built.
//
// Complexity:
//
//   - PushFront, PopFront, InsertAfter, EraseAfter, Swap, Size, Empty: O(1)
//   - Clear, Clone, Assign, From, comparisons: O(n)
//
// Concurrency:
//
//	None. A List is not safe for concurrent use without external locking.
//
// Also satisfies containers.Container from github.com/emirpasic/gods.
package fwdlist
