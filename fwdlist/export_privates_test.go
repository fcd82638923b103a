// SPDX-License-Identifier: MIT

package fwdlist

// Test-Bridge (White-Box) for chain invariants.
//
// Purpose:
//   - Let fwdlist_test walk the raw node chain and compare it with the stored
//     size, without widening the production API.
//
// Build Policy:
//   - A _test.go file in package fwdlist: compiled only by `go test`, visible
//     to the external fwdlist_test package in the same directory.

// ExportedChainLength counts the nodes reachable from the anchor.
func ExportedChainLength[T any](l *List[T]) int {
	count := 0
	for n := l.head.next; n != nil; n = n.next {
		count++
	}

	return count
}

// ExportedAnchorLinked reports whether the anchor links a first node.
func ExportedAnchorLinked[T any](l *List[T]) bool {
	return l.head.next != nil
}
