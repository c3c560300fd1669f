package entities

import "iter"

// OrderedMap is a map that remembers the order in which keys were first inserted.
// Setting a key that already exists replaces its value and keeps its position.
// A nil *OrderedMap behaves like an empty map for every read operation.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Set inserts or replaces the value stored under key.
func (it *OrderedMap[K, V]) Set(key K, value V) {
	if it.index == nil {
		it.index = make(map[K]int)
	}
	if pos, ok := it.index[key]; ok {
		it.values[pos] = value
		return
	}
	it.index[key] = len(it.keys)
	it.keys = append(it.keys, key)
	it.values = append(it.values, value)
}

// Get returns the value stored under key.
func (it *OrderedMap[K, V]) Get(key K) (V, bool) {
	var zero V
	if it == nil {
		return zero, false
	}
	pos, ok := it.index[key]
	if !ok {
		return zero, false
	}
	return it.values[pos], true
}

// Len returns the number of entries.
func (it *OrderedMap[K, V]) Len() int {
	if it == nil {
		return 0
	}
	return len(it.keys)
}

// IsEmpty reports whether the map has no entries.
func (it *OrderedMap[K, V]) IsEmpty() bool {
	return it.Len() == 0
}

// Keys returns a copy of the keys in insertion order.
func (it *OrderedMap[K, V]) Keys() []K {
	if it == nil {
		return nil
	}
	keys := make([]K, len(it.keys))
	copy(keys, it.keys)
	return keys
}

// All iterates over the entries in insertion order.
func (it *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if it == nil {
			return
		}
		for i, key := range it.keys {
			if !yield(key, it.values[i]) {
				return
			}
		}
	}
}
