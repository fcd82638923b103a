// SPDX-License-Identifier: MIT
// Package fwdlist_test contains shared fixtures and assertions for fwdlist.
//
// Purpose:
//   - Keep element values out of test bodies (no magic numbers).
//   - Check the size/chain invariant on every content assertion.

package fwdlist_test

import (
	"testing"

	"github.com/katalvlaran/lvlist/fwdlist"
	"github.com/stretchr/testify/require"
)

// Common element values used across fwdlist tests.
const (
	V0  = 0
	V1  = 1
	V2  = 2
	V3  = 3
	V7  = 7
	V8  = 8
	V99 = 99
)

// Common sizes used by property and benchmark loops.
const (
	NPropertyLists = 6
	NBenchElements = 1024
)

// propertyInputs RETURNS a fixed family of sequences, including the empty one,
// used by the round-trip and independence properties.
func propertyInputs() [][]int {
	out := make([][]int, 0, NPropertyLists)
	out = append(out, nil)
	out = append(out, []int{V1})
	out = append(out, []int{V1, V2})
	out = append(out, []int{V3, V2, V1})
	out = append(out, []int{V7, V7, V7, V7})
	out = append(out, []int{V0, V99, V8, V1, V2})

	return out
}

// requireItems FAILS the test unless l holds exactly want, front to back.
//
// Implementation:
//   - Stage 1: Compare Slice() with want (empty and nil treated alike).
//   - Stage 2: Check Size()/Empty() against len(want).
//   - Stage 3: Check Size() against the raw chain length (white-box bridge).
//
// Notes:
//   - Stage 3 is what catches a size counter drifting from the real chain.
func requireItems[T any](t *testing.T, l *fwdlist.List[T], want ...T) {
	t.Helper()

	got := l.Slice()
	if len(want) == 0 {
		require.Empty(t, got, "expected empty list, got %v", got)
	} else {
		require.Equal(t, want, got, "list contents")
	}
	require.Equal(t, len(want), l.Size(), "Size()")
	require.Equal(t, len(want) == 0, l.Empty(), "Empty()")
	require.Equal(t, l.Size(), fwdlist.ExportedChainLength(l), "Size() must match chain length")
	require.Equal(t, !l.Empty(), fwdlist.ExportedAnchorLinked(l), "anchor link must be set iff non-empty")
}
