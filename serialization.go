package emap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON encodes the map as a sparse JSON object keyed by decimal
// strings, occupied slots only. Free slots are omitted, not emitted as
// null, so the capacity itself is not part of the encoding.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for id := m.usedHead(); id.defined(); id = m.nodes[id].next {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(int(id)))
		buf.WriteString(`":`)
		v, err := json.Marshal(m.nodes[id].value)
		if err != nil {
			return nil, fmt.Errorf("emap: marshal value at key %d: %w", int(id), err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the map from a sparse JSON object. The capacity
// becomes maxKey+1 (zero for an empty object), whatever capacity the
// encoded map had; gaps above the largest key do not survive a round trip.
// Negative keys and keys whose successor is not addressable are rejected.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("emap: unmarshal: %w", err)
	}
	pairs := make(map[int]json.RawMessage, len(raw))
	maxKey := -1
	for ks, rv := range raw {
		k, err := strconv.Atoi(ks)
		if err != nil {
			return fmt.Errorf("emap: key %q is not an integer: %w", ks, err)
		}
		if k < 0 {
			return fmt.Errorf("emap: key %d is negative", k)
		}
		if k == math.MaxInt {
			return fmt.Errorf("emap: key %d would overflow the addressable capacity", k)
		}
		if k > maxKey {
			maxKey = k
		}
		pairs[k] = rv
	}
	fresh := New[V](maxKey + 1)
	for k, rv := range pairs {
		var v V
		if err := json.Unmarshal(rv, &v); err != nil {
			return fmt.Errorf("emap: unmarshal value at key %d: %w", k, err)
		}
		fresh.InsertUnchecked(k, v)
	}
	*m = *fresh
	return nil
}
