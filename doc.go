// Package emap provides a map with a fixed capacity and non-negative
// integers as keys.
//
// # Overview
//
// A Map is backed by a single flat slice of slots allocated once at
// construction time. Two intrusive doubly-linked lists are threaded through
// that slice: a free list of unoccupied slots and a used list of occupied
// ones. Every operation is a bounded sequence of index updates, so insert,
// remove, lookup and next-free-key are all O(1), with no hashing and no
// resizing.
//
// The capacity is fixed forever. Keys are slot indexes in [0, capacity);
// passing a key outside that range to a checked method panics, and the
// Unchecked twins skip the check entirely for callers that have already
// validated the key.
//
// # Usage
//
//	m := emap.New[string](10)
//	m.Insert(0, "Hello, world!")
//	m.Insert(1, "Good bye!")
//	fmt.Println(m.Len()) // 2
//
//	k, err := m.TryPush("another")
//	if err != nil {
//	    // map is full
//	}
//	fmt.Println(k)
//
// Iteration walks the used list, which is ordered by recency of insertion
// into a fresh slot, not by key:
//
//	for k, v := range m.All() {
//	    fmt.Println(k, v)
//	}
//
// # Key reuse
//
// Push always takes the head of the free list, so the key it assigns is the
// most recently freed slot if any exist, otherwise the lowest slot that has
// never been used. Freed keys carry no generation tag: a key handed out,
// removed and later reused is indistinguishable from the original occupant
// to anyone still holding it.
//
// # Thread safety
//
// A Map is not synchronized. Callers must serialize access externally when
// sharing one across goroutines.
package emap
