package emap

import "iter"

// All returns an iterator over (key, value) pairs with the values copied
// out. The order is the used-list order: the most recent insertion into a
// fresh slot comes first, not the smallest key. Replacing a value at an
// already-occupied key does not move the entry.
//
// Inserting or removing entries while ranging is not supported; mutating
// values through GetMut or AllMut is.
func (m *Map[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for id := m.usedHead(); id.defined(); id = m.nodes[id].next {
			if !yield(int(id), m.nodes[id].value) {
				return
			}
		}
	}
}

// AllMut is All but yields a pointer into each slot, so the caller can
// mutate values in place. List structure must not be mutated while ranging.
func (m *Map[V]) AllMut() iter.Seq2[int, *V] {
	return func(yield func(int, *V) bool) {
		for id := m.usedHead(); id.defined(); id = m.nodes[id].next {
			if !yield(int(id), &m.nodes[id].value) {
				return
			}
		}
	}
}

// Keys returns an iterator over occupied keys, in used-list order.
func (m *Map[V]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for id := m.usedHead(); id.defined(); id = m.nodes[id].next {
			if !yield(int(id)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the occupied values, in
// used-list order.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for id := m.usedHead(); id.defined(); id = m.nodes[id].next {
			if !yield(m.nodes[id].value) {
				return
			}
		}
	}
}
