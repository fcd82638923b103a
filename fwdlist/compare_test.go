// SPDX-License-Identifier: MIT
// Package fwdlist_test verifies the free comparison functions.

package fwdlist_test

import (
	"strings"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/katalvlaran/lvlist/fwdlist"
	"github.com/stretchr/testify/assert"
)

// TestCompare_Table checks every relation on a table of ordered pairs.
func TestCompare_Table(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		cmp  int
	}{
		{name: "both empty", a: nil, b: nil, cmp: 0},
		{name: "empty vs one", a: nil, b: []int{V0}, cmp: -1},
		{name: "equal", a: []int{V1, V2, V3}, b: []int{V1, V2, V3}, cmp: 0},
		{name: "last differs", a: []int{V1, V2}, b: []int{V1, V3}, cmp: -1},
		{name: "prefix is less", a: []int{V1, V2}, b: []int{V1, V2, V0}, cmp: -1},
		{name: "first differs", a: []int{V3}, b: []int{V1, V99}, cmp: 1},
		{name: "longer but greater", a: []int{V1, V8, V0}, b: []int{V1, V7}, cmp: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := fwdlist.From(tc.a...), fwdlist.From(tc.b...)

			assert.Equal(t, tc.cmp, fwdlist.Compare(a, b), "Compare")
			assert.Equal(t, -tc.cmp, fwdlist.Compare(b, a), "Compare reversed")
			assert.Equal(t, tc.cmp == 0, fwdlist.Equal(a, b), "Equal")
			assert.Equal(t, tc.cmp != 0, fwdlist.NotEqual(a, b), "NotEqual")
			assert.Equal(t, tc.cmp < 0, fwdlist.Less(a, b), "Less")
			assert.Equal(t, tc.cmp > 0, fwdlist.Greater(a, b), "Greater")
			assert.Equal(t, tc.cmp <= 0, fwdlist.LessOrEqual(a, b), "LessOrEqual")
			assert.Equal(t, tc.cmp >= 0, fwdlist.GreaterOrEqual(a, b), "GreaterOrEqual")
			assert.Equal(t, tc.cmp, fwdlist.CompareWith(a, b, utils.IntComparator), "CompareWith")
		})
	}
}

// TestCompare_GreaterIsStrict checks that equal lists are never Greater.
func TestCompare_GreaterIsStrict(t *testing.T) {
	a := fwdlist.From(V1, V2)
	b := fwdlist.From(V1, V2)
	assert.False(t, fwdlist.Greater(a, b))
	assert.False(t, fwdlist.Greater(b, a))
	assert.False(t, fwdlist.Less(a, b))
	assert.True(t, fwdlist.GreaterOrEqual(a, b))
}

// TestCompare_NilAndSelf checks that nil compares as empty and a list equals itself.
func TestCompare_NilAndSelf(t *testing.T) {
	var nilList *fwdlist.List[int]
	empty := fwdlist.New[int]()
	l := fwdlist.From(V1)

	assert.True(t, fwdlist.Equal(nilList, empty))
	assert.True(t, fwdlist.Equal(nilList, nilList))
	assert.True(t, fwdlist.Less(nilList, l))
	assert.Equal(t, 0, fwdlist.Compare(nilList, empty))
	assert.True(t, fwdlist.Equal(l, l))
}

// TestCompare_Strings checks ordering on strings and with a gods comparator.
func TestCompare_Strings(t *testing.T) {
	a := fwdlist.From("ant", "bee")
	b := fwdlist.From("ant", "cat")

	assert.True(t, fwdlist.Less(a, b))
	assert.Equal(t, -1, fwdlist.CompareWith(a, b, utils.StringComparator))
}

// TestEqualFunc checks equality on a non-comparable element type and with a
// custom predicate.
func TestEqualFunc(t *testing.T) {
	a := fwdlist.From([]int{V1, V2}, []int{V3})
	b := fwdlist.From([]int{V1, V2}, []int{V3})
	c := fwdlist.From([]int{V1, V2})

	sameInts := func(x, y []int) bool { return assert.ObjectsAreEqual(x, y) }
	assert.True(t, fwdlist.EqualFunc(a, b, sameInts))
	assert.False(t, fwdlist.EqualFunc(a, c, sameInts))

	x := fwdlist.From("Go", "LIST")
	y := fwdlist.From("go", "list")
	assert.False(t, fwdlist.Equal(x, y))
	assert.True(t, fwdlist.EqualFunc(x, y, strings.EqualFold))
}
