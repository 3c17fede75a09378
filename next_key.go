package emap

import "fmt"

// TryNextKey returns the key the next Push would assign, without inserting
// anything: the head of the free list. Returns ErrFull when every slot is
// occupied. O(1).
func (m *Map[V]) TryNextKey() (int, error) {
	// the zero-value Map never went through a constructor, so its list
	// heads are meaningless; it has no slots either way
	if len(m.nodes) == 0 || !m.free.defined() {
		return 0, ErrFull
	}
	return int(m.free), nil
}

// NextKey is TryNextKey for callers that know the map is not full.
// Panics when it is.
func (m *Map[V]) NextKey() int {
	k, err := m.TryNextKey()
	if err != nil {
		panic(fmt.Sprintf("emap: no next key, all %d slots are occupied", len(m.nodes)))
	}
	return k
}

// TryPush inserts v at the next free key and returns that key. The key is
// the most recently freed slot if any exist, otherwise the lowest slot
// never used so far. Returns ErrFull, leaving the map unmodified, when no
// slot is free.
func (m *Map[V]) TryPush(v V) (int, error) {
	k, err := m.TryNextKey()
	if err != nil {
		return 0, err
	}
	m.InsertUnchecked(k, v)
	return k, nil
}

// Push is TryPush for callers that know the map is not full.
// Panics when it is.
func (m *Map[V]) Push(v V) int {
	k, err := m.TryPush(v)
	if err != nil {
		panic(fmt.Sprintf("emap: cannot push, all %d slots are occupied", len(m.nodes)))
	}
	return k
}
