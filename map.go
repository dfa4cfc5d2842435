// Copyright (c) The densemap authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package densemap provides Map, a hash table built from separate
// chaining over dense entry storage. All entries live contiguously in
// one slice, so iteration is a linear walk; the hash table proper only
// holds positions into that slice.
//
// Entries keep insertion order until the first Erase: removal fills
// the vacated slot with the last entry, so order is not stable across
// erases. Insert never overwrites — the first value stored under a key
// wins until the key is erased.
//
// The following requirements are the user's responsibility to follow:
//   - hash(seed, a) must be deterministic for a fixed seed, and equal
//     keys must hash equally.
//   - If a key contains references -- pointers reachable through
//     struct fields -- mutating the referenced data in a way that
//     changes the hash results in undefined behavior.
//   - For good performance hash functions should return uniformly
//     distributed data across the entire 64 bits of the value.
package densemap

// The layout is the classic chained table over a dense array: data
// holds the entries, buckets holds lists of data positions keyed by
// hash. Lookup hashes the key, scans one bucket's position list, and
// compares keys in data. The bucket array is rebuilt whenever the
// load-factor invariant
//
//	minLoadFactor < len(buckets)/len(data) < 1/maxLoadFactor
//
// breaks, except below minBuckets entries where a minBuckets-sized
// array is kept regardless. Positions stored in buckets are plain
// ints, not stable handles: every structural change to data
// (swap-remove, rebuild) must patch or repopulate the affected bucket
// entries within the same operation.

import (
	"hash/maphash"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	// minBuckets is the smallest bucket array the table ever holds.
	// Every constructor sizes the array before returning, so hashing
	// never has to reduce modulo zero.
	minBuckets = 3

	// Rebuild thresholds: grow when len(buckets)*maxLoadFactor <
	// len(data), shrink when len(data)*minLoadFactor < len(buckets).
	minLoadFactor = 3
	maxLoadFactor = 2
)

// ErrNotFound is reported by At for keys not present in the Map.
var ErrNotFound = errors.New("densemap: key not found")

// HashFunc hashes a key to a 64-bit value. The seed is the one the
// Map was created with; implementations built on [hash/maphash] pass
// it through, others may ignore it.
type HashFunc[K comparable] func(maphash.Seed, K) uint64

// KeyValue contains a Key and a Value.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map implements a hash map over densely stored entries. The zero
// value is not usable; obtain a Map from New, NewFunc or Collect.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	// data holds the live entries packed at 0..n-1. It is the single
	// source of truth for content and iteration order.
	data []KeyValue[K, V]
	// buckets[b] lists the positions p with bucketOf(data[p].Key) == b.
	// Each position appears in exactly one bucket.
	buckets [][]int

	seed maphash.Seed
	hash HashFunc[K]
}

// New instantiates a Map hashed with [maphash.Comparable], initialized
// with any KeyValues passed. Duplicate keys in kvs keep the first
// value.
func New[K comparable, V any](kvs ...KeyValue[K, V]) *Map[K, V] {
	return NewFunc[K, V](maphash.Comparable[K], kvs...)
}

// NewFunc instantiates a Map using the supplied hash capability. The
// hash function is passed a [hash/maphash.Seed], which is meant to be
// used with functions in the [hash/maphash] package, though it can be
// ignored.
func NewFunc[K comparable, V any](hash HashFunc[K], kvs ...KeyValue[K, V]) *Map[K, V] {
	m := &Map[K, V]{seed: maphash.MakeSeed(), hash: hash}
	m.rehash()
	for _, kv := range kvs {
		m.Insert(kv.Key, kv.Value)
	}
	return m
}

// Len returns the count of entries in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// Empty reports whether m holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

// Hash returns the hash capability m was created with.
func (m *Map[K, V]) Hash() HashFunc[K] {
	return m.hash
}

// Get returns the value associated with key and true if that key is
// in the Map, otherwise it returns the zero value of V and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil || len(m.data) == 0 {
		var zero V
		return zero, false
	}
	pos := m.scan(m.bucketOf(key), key)
	if pos < 0 {
		var zero V
		return zero, false
	}
	return m.data[pos].Value, true
}

// At returns the value stored under key. Unlike Get it reports a
// missing key as an error wrapping ErrNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, errors.Wrapf(ErrNotFound, "at %v", key)
	}
	return v, nil
}

// Insert stores value under key and reports whether it did. A key
// already present keeps its existing value.
func (m *Map[K, V]) Insert(key K, value V) bool {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pick a hash function first.
		panic("densemap: Insert called on nil Map")
	}
	b := m.bucketOf(key)
	if m.scan(b, key) >= 0 {
		return false
	}
	m.buckets[b] = append(m.buckets[b], len(m.data))
	m.data = append(m.data, KeyValue[K, V]{Key: key, Value: value})
	m.rehash()
	return true
}

// Erase removes key and reports whether it was present. The vacated
// slot is filled by moving the last entry down, so Erase reorders
// storage and invalidates outstanding iterators.
func (m *Map[K, V]) Erase(key K) bool {
	if m == nil || len(m.data) == 0 {
		return false
	}
	b := m.bucketOf(key)
	d := m.scan(b, key)
	if d < 0 {
		return false
	}
	i := slices.Index(m.buckets[b], d)
	m.buckets[b] = slices.Delete(m.buckets[b], i, i+1)

	last := len(m.data) - 1
	if d != last {
		// The tail entry moves into the vacated slot; the position
		// recorded for it in its bucket has to follow.
		lb := m.bucketOf(m.data[last].Key)
		m.data[d] = m.data[last]
		m.buckets[lb][slices.Index(m.buckets[lb], last)] = d
	}
	// Clear the dropped slot in case key or value hold pointers.
	m.data[last] = KeyValue[K, V]{}
	m.data = m.data[:last]
	m.rehash()
	return true
}

// Ref returns a pointer to the value stored under key, first inserting
// the zero value of V when key is absent. The pointer stays valid only
// until the next mutating call on m.
func (m *Map[K, V]) Ref(key K) *V {
	b := m.bucketOf(key)
	pos := m.scan(b, key)
	if pos < 0 {
		pos = len(m.data)
		m.buckets[b] = append(m.buckets[b], pos)
		m.data = append(m.data, KeyValue[K, V]{Key: key})
		if m.rehash() {
			// Positions captured before a rebuild must not be trusted
			// across it; resolve the entry again.
			pos = m.scan(m.bucketOf(key), key)
		}
	}
	return &m.data[pos].Value
}

// Clear deletes all entries from m and resets the bucket array to its
// minimum size.
func (m *Map[K, V]) Clear() {
	if m == nil || len(m.data) == 0 {
		return
	}
	m.data = nil
	m.buckets = make([][]int, minBuckets)
}

// bucketOf reduces key's hash to a bucket position. len(m.buckets) is
// never zero after construction.
func (m *Map[K, V]) bucketOf(key K) int {
	return int(m.hash(m.seed, key) % uint64(len(m.buckets)))
}

// scan returns key's position in data, or -1 when absent. Only bucket
// b is searched; callers pass bucketOf(key).
func (m *Map[K, V]) scan(b int, key K) int {
	for _, pos := range m.buckets[b] {
		if m.data[pos].Key == key {
			return pos
		}
	}
	return -1
}

// rehash rebuilds the bucket array when the load-factor invariant
// breaks and reports whether a rebuild happened. A freshly constructed
// Map gets its initial minBuckets-sized array here.
func (m *Map[K, V]) rehash() bool {
	if len(m.buckets) == 0 && len(m.data) == 0 {
		m.buckets = make([][]int, minBuckets)
		return true
	}
	n := len(m.data)
	if len(m.buckets)*maxLoadFactor >= n && n*minLoadFactor >= len(m.buckets) {
		return false
	}
	size := max(n, minBuckets)
	if size == len(m.buckets) {
		return false
	}
	m.buckets = make([][]int, size)
	for pos := range m.data {
		b := m.bucketOf(m.data[pos].Key)
		m.buckets[b] = append(m.buckets[b], pos)
	}
	return true
}
