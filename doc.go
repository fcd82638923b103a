// Package lvlist is a small home for linked containers written in plain,
// generic Go.
//
// What is inside:
//
//	fwdlist/ — singly-linked List[T] with a before-begin anchor, O(1)
//	           InsertAfter/EraseAfter, mutable and read-only forward
//	           iterators, Clone/Assign/Swap and lexicographic comparisons
//	examples/ — runnable demos (undo log, pipeline editing, sorted merge)
//
// Why lvlist?
//
//   - Generic: one implementation for every element type
//   - Predictable: every operation documents its complexity
//   - Interoperable: List satisfies gods containers.Container and ranges
//     with Go 1.23 range-over-func
//
// Quick ASCII picture of a list holding 1, 2, 3:
//
//	[anchor] ──► 1 ──► 2 ──► 3 ──► nil
//	    ▲        ▲                  ▲
//	BeforeBegin  Begin              End
//
//	go get github.com/katalvlaran/lvlist/fwdlist
package lvlist
