// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

import "slices"

// OrderedMap is a generic map that remembers insertion order.
// It is not safe for concurrent use; Room guards it with its own lock.
type OrderedMap[K comparable, V any] struct {
	objectMap map[K]V
	keys      []K
}

func NewOrderedMap[K comparable, V any](capacity ...int) *OrderedMap[K, V] {
	if len(capacity) > 0 {
		return &OrderedMap[K, V]{
			objectMap: make(map[K]V, capacity[0]),
			keys:      make([]K, 0, capacity[0]),
		}
	}

	return &OrderedMap[K, V]{
		objectMap: make(map[K]V),
	}
}

// Set stores value under key. New keys go to the end of the order,
// existing keys keep their position.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := m.objectMap[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.objectMap[key] = value
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	value, found := m.objectMap[key]
	return value, found
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, exists := m.objectMap[key]
	return exists
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// ForEach calls callback for each entry in insertion order.
func (m *OrderedMap[K, V]) ForEach(callback func(key K, value V)) {
	for _, key := range m.keys {
		callback(key, m.objectMap[key])
	}
}

// GetAll returns a copy of the entries.
func (m *OrderedMap[K, V]) GetAll() map[K]V {
	result := make(map[K]V, len(m.objectMap))
	for k, v := range m.objectMap {
		result[k] = v
	}
	return result
}
