package emap

import "fmt"

// New makes a map with every slot free. The free list is the ascending
// chain 0 → 1 → … → capacity-1, so the first keys Push hands out count up
// from zero. Panics if capacity is negative; an allocation the runtime
// cannot satisfy is fatal.
func New[V any](capacity int) *Map[V] {
	m := alloc[V](capacity)
	for i := range m.nodes {
		m.nodes[i].next = nodeID(i + 1)
		m.nodes[i].prev = nodeID(i - 1)
	}
	if capacity > 0 {
		m.nodes[capacity-1].next = undef
		m.free = 0
	}
	m.selfCheck()
	return m
}

// NewWithValue makes a map with every slot occupied by a copy of v. The
// used list is the ascending chain 0 → 1 → … → capacity-1 and Len() equals
// capacity. Panics if capacity is negative.
func NewWithValue[V any](capacity int, v V) *Map[V] {
	return NewWithFunc(capacity, func(int) V { return v })
}

// NewWithFunc makes a map with every slot occupied, slot k holding fn(k).
// Slots are filled and linked strictly in ascending order, and a slot is
// linked into the used list only after fn has returned its value; if fn
// panics at slot k the map behind the unwinding panic is a structurally
// valid k-entry prefix, never a half-linked slot. Panics if capacity is
// negative.
func NewWithFunc[V any](capacity int, fn func(k int) V) *Map[V] {
	m := alloc[V](capacity)
	tail := undef
	for i := 0; i < capacity; i++ {
		v := fn(i)
		n := &m.nodes[i]
		n.value = v
		n.present = true
		n.next = undef
		n.prev = tail
		if tail.defined() {
			m.nodes[tail].next = nodeID(i)
		} else {
			m.used = nodeID(i)
		}
		tail = nodeID(i)
		m.length++
	}
	m.selfCheck()
	return m
}

// alloc makes the backing slice once; it is never resized or replaced.
func alloc[V any](capacity int) *Map[V] {
	if capacity < 0 {
		panic(fmt.Sprintf("emap: negative capacity %d", capacity))
	}
	return &Map[V]{
		nodes: make([]node[V], capacity),
		free:  undef,
		used:  undef,
	}
}
