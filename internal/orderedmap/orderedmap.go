// Package orderedmap implements a string-keyed map that keeps its keys in
// ascending lexicographic order, the Go analogue of Java's TreeMap used
// throughout the inverted index so that word and location iteration (and
// JSON output) is deterministic.
package orderedmap

import "sort"

// Map is a map[string]V whose keys can be walked, or tail-scanned, in
// ascending order. The zero value is not usable; use New.
type Map[V any] struct {
	keys []string
	vals map[string]V
}

// New creates an empty ordered map.
func New[V any]() *Map[V] {
	return &Map[V]{vals: make(map[string]V)}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Get returns the value stored at key, if any.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Set inserts or overwrites the value at key.
func (m *Map[V]) Set(key string, val V) {
	if _, exists := m.vals[key]; !exists {
		m.insertKey(key)
	}
	m.vals[key] = val
}

// GetOrInsert returns the existing value at key, or stores and returns the
// value produced by makeValue if key is not yet present.
func (m *Map[V]) GetOrInsert(key string, makeValue func() V) V {
	if v, ok := m.vals[key]; ok {
		return v
	}
	v := makeValue()
	m.insertKey(key)
	m.vals[key] = v
	return v
}

func (m *Map[V]) insertKey(key string) {
	idx := sort.SearchStrings(m.keys, key)
	m.keys = append(m.keys, "")
	copy(m.keys[idx+1:], m.keys[idx:])
	m.keys[idx] = key
}

// Keys returns a copy of the keys in ascending order.
func (m *Map[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for every entry in ascending key order. Iteration stops
// early if fn returns false.
func (m *Map[V]) Range(fn func(key string, val V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}

// RangeTail calls fn for every key >= from, in ascending order, for as
// long as keep(key) returns true. This is the primitive behind prefix
// (partial) search: callers pass keep = strings.HasPrefix(key, from).
func (m *Map[V]) RangeTail(from string, keep func(key string) bool, fn func(key string, val V)) {
	idx := sort.SearchStrings(m.keys, from)
	for _, k := range m.keys[idx:] {
		if !keep(k) {
			return
		}
		fn(k, m.vals[k])
	}
}
