package emap

import (
	"fmt"
	"strings"
)

// String renders the occupied entries as {k1: v1, k2: v2}, in used-list
// order. An empty map renders as {}.
func (m *Map[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d: %v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
