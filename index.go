package emap

import "fmt"

// MustGet returns the value at k, panicking when the slot is free or k is
// out of range. It is the indexing-operator shorthand for callers that
// know the key is occupied.
func (m *Map[V]) MustGet(k int) V {
	v, ok := m.Get(k)
	if !ok {
		panic(fmt.Sprintf("emap: no value at key %d", k))
	}
	return v
}
