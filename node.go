package emap

// nodeID addresses a slot in the backing slice. The undef sentinel means
// "no link" and terminates both intrusive lists.
type nodeID int

const undef nodeID = -1

// defined reports whether the id points at a slot.
func (id nodeID) defined() bool { return id != undef }

// node is one slot: its value (when present) and the next/prev links of
// whichever list currently owns it. A node belongs to exactly one of the
// free and used lists at any time; which one is determined structurally,
// by which head reaches it, not stored here.
type node[V any] struct {
	next    nodeID
	prev    nodeID
	value   V
	present bool
}
