package emap

import "slices"

// Clone returns an independent map with the same capacity, the same
// occupied (key, value) pairs and the same list order, slot for slot.
// Values are copied by assignment; use CloneFunc when V holds pointers
// that must not be shared.
func (m *Map[V]) Clone() *Map[V] {
	c := &Map[V]{
		nodes:  slices.Clone(m.nodes),
		free:   m.free,
		used:   m.used,
		length: m.length,
	}
	c.selfCheck()
	return c
}

// CloneFunc is Clone but passes every occupied value through clone, for
// deep copies.
func (m *Map[V]) CloneFunc(clone func(V) V) *Map[V] {
	c := m.Clone()
	for id := c.usedHead(); id.defined(); id = c.nodes[id].next {
		c.nodes[id].value = clone(c.nodes[id].value)
	}
	return c
}
