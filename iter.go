// Copyright (c) The densemap authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densemap

import "iter"

// All returns an iterator over key-value pairs from m, in storage
// order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); it != m.End(); it = it.Next() {
			if !yield(it.Key(), *it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Begin(); it != m.End(); it = it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Begin(); it != m.End(); it = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Collect builds a Map hashed with [maphash.Comparable] from an
// iterator over key-value pairs. Duplicate keys keep the first value
// yielded.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}
