package emap

import "fmt"

// Map is a fixed-capacity map keyed by slot indexes in [0, Capacity()).
//
// The zero value is an empty map with zero capacity; use New, NewWithValue
// or NewWithFunc to build one with room in it.
type Map[V any] struct {
	nodes  []node[V]
	free   nodeID // head of the free list
	used   nodeID // head of the used list
	length int    // number of slots on the used list
}

// bounds panics unless k is a valid slot index.
func (m *Map[V]) bounds(k int) {
	if k < 0 || k >= len(m.nodes) {
		panic(fmt.Sprintf("emap: key %d out of range for capacity %d", k, len(m.nodes)))
	}
}

// unlink splices slot id out of the list whose head is *head.
func (m *Map[V]) unlink(id nodeID, head *nodeID) {
	n := &m.nodes[id]
	if n.prev.defined() {
		m.nodes[n.prev].next = n.next
	} else {
		*head = n.next
	}
	if n.next.defined() {
		m.nodes[n.next].prev = n.prev
	}
}

// linkHead splices slot id onto the front of the list whose head is *head.
func (m *Map[V]) linkHead(id nodeID, head *nodeID) {
	n := &m.nodes[id]
	n.prev = undef
	n.next = *head
	if (*head).defined() {
		m.nodes[*head].prev = id
	}
	*head = id
}

// usedHead returns the head of the used list, or undef for the zero-value
// Map, whose heads never went through a constructor.
func (m *Map[V]) usedHead() nodeID {
	if len(m.nodes) == 0 {
		return undef
	}
	return m.used
}

// Len returns the number of occupied slots. O(1).
func (m *Map[V]) Len() int { return m.length }

// IsEmpty reports whether no slot is occupied.
func (m *Map[V]) IsEmpty() bool { return m.length == 0 }

// Capacity returns the fixed number of slots, occupied or not.
func (m *Map[V]) Capacity() int { return len(m.nodes) }

// Get returns the value at k and whether the slot is occupied.
// Panics if k is not in [0, Capacity()).
func (m *Map[V]) Get(k int) (V, bool) {
	m.bounds(k)
	return m.GetUnchecked(k)
}

// GetUnchecked is Get without the bounds check.
// The caller must guarantee 0 <= k < Capacity().
func (m *Map[V]) GetUnchecked(k int) (V, bool) {
	n := &m.nodes[k]
	return n.value, n.present
}

// GetMut returns a pointer into the slot at k, or nil when the slot is
// free. The pointer stays valid until the slot is removed.
// Panics if k is not in [0, Capacity()).
func (m *Map[V]) GetMut(k int) *V {
	m.bounds(k)
	return m.GetMutUnchecked(k)
}

// GetMutUnchecked is GetMut without the bounds check.
// The caller must guarantee 0 <= k < Capacity().
func (m *Map[V]) GetMutUnchecked(k int) *V {
	n := &m.nodes[k]
	if !n.present {
		return nil
	}
	return &n.value
}

// ContainsKey reports whether the slot at k is occupied.
// Panics if k is not in [0, Capacity()).
func (m *Map[V]) ContainsKey(k int) bool {
	m.bounds(k)
	return m.ContainsKeyUnchecked(k)
}

// ContainsKeyUnchecked is ContainsKey without the bounds check.
// The caller must guarantee 0 <= k < Capacity().
func (m *Map[V]) ContainsKeyUnchecked(k int) bool {
	return m.nodes[k].present
}

// Insert puts v at k. If the slot is occupied the value is replaced in
// place; otherwise the slot moves from the free list to the head of the
// used list. Panics if k is not in [0, Capacity()).
func (m *Map[V]) Insert(k int, v V) {
	m.bounds(k)
	m.InsertUnchecked(k, v)
}

// InsertUnchecked is Insert without the bounds check.
// The caller must guarantee 0 <= k < Capacity().
func (m *Map[V]) InsertUnchecked(k int, v V) {
	id := nodeID(k)
	n := &m.nodes[id]
	if n.present {
		n.value = v
		return
	}
	m.unlink(id, &m.free)
	m.linkHead(id, &m.used)
	n.value = v
	n.present = true
	m.length++
	m.selfCheck()
}

// Remove vacates the slot at k. Removing a free slot is a no-op. The slot
// moves to the head of the free list, so it is the first key a subsequent
// Push will assign. Panics if k is not in [0, Capacity()).
func (m *Map[V]) Remove(k int) {
	m.bounds(k)
	m.RemoveUnchecked(k)
}

// RemoveUnchecked is Remove without the bounds check.
// The caller must guarantee 0 <= k < Capacity().
func (m *Map[V]) RemoveUnchecked(k int) {
	id := nodeID(k)
	n := &m.nodes[id]
	if !n.present {
		return
	}
	m.unlink(id, &m.used)
	m.linkHead(id, &m.free)
	var zero V
	n.value = zero // release the old value to the GC
	n.present = false
	m.length--
	m.selfCheck()
}

// Clear vacates every slot, restoring the all-free state. Capacity is
// unchanged and the backing slice is kept. O(Len()).
func (m *Map[V]) Clear() {
	for m.length > 0 {
		m.RemoveUnchecked(int(m.used))
	}
}

// Retain keeps only the entries for which keep returns true. The predicate
// receives a pointer into the slot, so mutations it makes survive even for
// entries it keeps.
func (m *Map[V]) Retain(keep func(k int, v *V) bool) {
	snapshot := make([]int, 0, m.length)
	for k := range m.Keys() {
		snapshot = append(snapshot, k)
	}
	for _, k := range snapshot {
		n := &m.nodes[k]
		if !n.present {
			continue
		}
		if !keep(k, &n.value) {
			m.RemoveUnchecked(k)
		}
	}
}
