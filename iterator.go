// Copyright (c) The densemap authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densemap

// Iterator addresses one position in a Map's entry storage. Iterators
// are plain values compared with ==: a loop over all entries is
//
//	for it := m.Begin(); it != m.End(); it = it.Next() {
//		... it.Key(), it.Value() ...
//	}
//
// Any mutating call (Insert, Erase, Clear, Ref on a missing key)
// invalidates every outstanding Iterator: erase moves entries and a
// rebuild may follow any mutation. Dereferencing an invalidated
// Iterator is a contract violation, not merely a stale read.
//
// The zero Iterator is not usable; obtain one from Begin, End or Find.
type Iterator[K comparable, V any] struct {
	m   *Map[K, V]
	pos int
}

// Begin returns an iterator at the first entry in storage order. It
// equals End when m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m}
}

// End returns the one-past-the-end iterator. It is a sentinel only
// and must not be dereferenced.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, pos: m.Len()}
}

// Find returns an iterator at the entry for key, or End() when key is
// absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	if m == nil || len(m.data) == 0 {
		return m.End()
	}
	pos := m.scan(m.bucketOf(key), key)
	if pos < 0 {
		return m.End()
	}
	return Iterator[K, V]{m: m, pos: pos}
}

// Next returns the iterator advanced by one position.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{m: it.m, pos: it.pos + 1}
}

// Key returns a copy of the key at the iterator's position. Stored
// keys are never exposed mutably.
func (it Iterator[K, V]) Key() K {
	return it.m.data[it.pos].Key
}

// Value returns a pointer to the value at the iterator's position.
// Writes through it are visible in the Map. Like the Iterator itself,
// the pointer is valid only until the next mutating call.
func (it Iterator[K, V]) Value() *V {
	return &it.m.data[it.pos].Value
}
