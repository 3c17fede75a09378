package emap

import (
	"fmt"
	"os"
)

// paranoid enables a full structural re-check after every mutation.
// Controlled by the EMAP_PARANOID env var; the test suite forces it on.
// Checks are O(capacity), so leave it off in production builds.
var paranoid = os.Getenv("EMAP_PARANOID") != ""

func (m *Map[V]) selfCheck() {
	if !paranoid {
		return
	}
	if err := m.damaged(); err != nil {
		panic(err)
	}
}

// damaged walks both lists and reports the first broken structural
// invariant, or nil when the map is consistent: every slot on exactly one
// list, back-links matching forward links, presence flags matching list
// membership, and the cached length matching the used-list size.
func (m *Map[V]) damaged() error {
	if len(m.nodes) == 0 {
		if m.length != 0 {
			return fmt.Errorf("emap: cached length %d on a map with no slots", m.length)
		}
		return nil
	}
	seen := make([]bool, len(m.nodes))
	walk := func(head nodeID, present bool, name string) (int, error) {
		count := 0
		prev := undef
		for id := head; id.defined(); id = m.nodes[id].next {
			if int(id) < 0 || int(id) >= len(m.nodes) {
				return 0, fmt.Errorf("emap: %s list points at slot %d outside capacity %d", name, int(id), len(m.nodes))
			}
			if seen[id] {
				return 0, fmt.Errorf("emap: slot %d reachable twice (cycle or shared by both lists)", int(id))
			}
			seen[id] = true
			if m.nodes[id].prev != prev {
				return 0, fmt.Errorf("emap: slot %d on the %s list has prev %d, want %d", int(id), name, int(m.nodes[id].prev), int(prev))
			}
			if m.nodes[id].present != present {
				return 0, fmt.Errorf("emap: slot %d on the %s list has present=%v", int(id), name, m.nodes[id].present)
			}
			prev = id
			count++
		}
		return count, nil
	}
	if _, err := walk(m.free, false, "free"); err != nil {
		return err
	}
	inUse, err := walk(m.used, true, "used")
	if err != nil {
		return err
	}
	for i := range seen {
		if !seen[i] {
			return fmt.Errorf("emap: slot %d unreachable from either list", i)
		}
	}
	if inUse != m.length {
		return fmt.Errorf("emap: cached length %d, but %d slots on the used list", m.length, inUse)
	}
	return nil
}
