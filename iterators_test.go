package emap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_All_Empty(t *testing.T) {
	m := New[uint32](16)
	for range m.All() {
		t.Fatal("nothing to yield")
	}
}

func Test_All_YieldsEveryEntry(t *testing.T) {
	m := New[string](16)
	m.Insert(0, "one")
	m.Insert(1, "two")
	m.Insert(2, "three")

	sum, count := 0, 0
	for k, v := range m.All() {
		sum += k
		count++
		require.NotEmpty(t, v)
	}
	require.Equal(t, 3, count)
	require.Equal(t, 3, sum)
}

func Test_All_UsedListOrderNotKeyOrder(t *testing.T) {
	// fresh-slot insertions link at the head, so traversal is
	// most-recently-inserted first
	m := New[string](16)
	m.Insert(3, "a")
	m.Insert(0, "b")
	m.Insert(7, "c")

	keys := make([]int, 0, 3)
	for k := range m.All() {
		keys = append(keys, k)
	}
	require.Equal(t, []int{7, 0, 3}, keys)
}

func Test_All_EarlyBreak(t *testing.T) {
	m := New[int](8)
	m.Insert(0, 1)
	m.Insert(1, 2)
	m.Insert(2, 3)

	seen := 0
	for range m.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func Test_All_CopiesValues(t *testing.T) {
	m := New[[2]int](4)
	m.Insert(0, [2]int{1, 2})
	for _, v := range m.All() {
		v[0] = 99 // mutating the copy
	}
	require.Equal(t, [2]int{1, 2}, m.MustGet(0))
}

func Test_AllMut_MutatesInPlace(t *testing.T) {
	m := New[int](8)
	m.Insert(0, 10)
	m.Insert(5, 50)

	for _, v := range m.AllMut() {
		*v++
	}
	require.Equal(t, 11, m.MustGet(0))
	require.Equal(t, 51, m.MustGet(5))
}

func Test_Keys_MatchesAll(t *testing.T) {
	m := New[string](16)
	m.Insert(2, "x")
	m.Insert(9, "y")

	var fromAll, fromKeys []int
	for k := range m.All() {
		fromAll = append(fromAll, k)
	}
	for k := range m.Keys() {
		fromKeys = append(fromKeys, k)
	}
	require.Equal(t, fromAll, fromKeys)
}

func Test_Values_YieldsInUsedListOrder(t *testing.T) {
	m := New[string](8)
	m.Insert(1, "first")
	m.Insert(4, "second")

	var got []string
	for v := range m.Values() {
		got = append(got, v)
	}
	require.Equal(t, []string{"second", "first"}, got)
}

func Test_Iteration_SkipsRemoved(t *testing.T) {
	m := New[int](8)
	m.Insert(0, 0)
	m.Insert(1, 1)
	m.Insert(2, 2)
	m.Remove(1)

	for k := range m.Keys() {
		require.NotEqual(t, 1, k)
	}
}
