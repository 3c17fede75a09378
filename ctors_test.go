package emap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New_Empty(t *testing.T) {
	m := New[string](16)
	require.Equal(t, 0, m.Len())
	require.Equal(t, 16, m.Capacity())
	require.False(t, m.ContainsKey(8))
}

func Test_New_ZeroCapacity(t *testing.T) {
	m := New[string](0)
	require.Equal(t, 0, m.Capacity())
	_, err := m.TryPush("x")
	require.ErrorIs(t, err, ErrFull)
}

func Test_New_NegativeCapacityPanics(t *testing.T) {
	require.Panics(t, func() { New[int](-1) })
	require.Panics(t, func() { NewWithValue(-5, 0) })
}

func Test_New_FreeListIsAscending(t *testing.T) {
	m := New[int](4)
	for want := 0; want < 4; want++ {
		k, err := m.TryPush(want)
		require.NoError(t, err)
		require.Equal(t, want, k)
	}
}

func Test_NewWithValue_AllSlotsOccupied(t *testing.T) {
	m := NewWithValue(8, "fill")
	require.Equal(t, 8, m.Len())
	require.Equal(t, 8, m.Capacity())
	for k := 0; k < 8; k++ {
		require.Equal(t, "fill", m.MustGet(k))
	}
	_, err := m.TryPush("extra")
	require.ErrorIs(t, err, ErrFull)
}

func Test_NewWithValue_UsedListIsAscending(t *testing.T) {
	m := NewWithValue(4, 0)
	keys := make([]int, 0, 4)
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	require.Equal(t, []int{0, 1, 2, 3}, keys)
}

func Test_NewWithFunc_PerSlotValues(t *testing.T) {
	m := NewWithFunc(5, func(k int) int { return k * k })
	for k := 0; k < 5; k++ {
		require.Equal(t, k*k, m.MustGet(k))
	}
}

func Test_NewWithFunc_FillOrderIsAscending(t *testing.T) {
	calls := make([]int, 0, 4)
	NewWithFunc(4, func(k int) int {
		calls = append(calls, k)
		return k
	})
	require.Equal(t, []int{0, 1, 2, 3}, calls)
}

func Test_NewWithFunc_PanicLeavesValidPrefix(t *testing.T) {
	produced := 0
	require.PanicsWithValue(t, "clone failed", func() {
		NewWithFunc(3, func(k int) int {
			if k == 1 {
				panic("clone failed")
			}
			produced++
			return k
		})
	})
	// the fill stops at the panicking slot: one value produced, slot 1
	// itself never linked in
	require.Equal(t, 1, produced)
}

func Test_NewWithValue_Struct(t *testing.T) {
	type foo struct{ v [3]uint32 }
	m := NewWithValue(16, foo{v: [3]uint32{1, 2, 100}})
	require.Equal(t, 16, m.Len())
	require.Equal(t, uint32(100), m.MustGet(7).v[2])
}
