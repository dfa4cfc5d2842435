// Copyright (c) The densemap authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densemap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts m to a string representation using fmt formatting
// for keys and values. Output is sorted by stringified key, so equal
// Maps render identically regardless of hash seed.
func (m *Map[K, V]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(value V) string { return fmt.Sprint(value) },
	)
}

// String converts m to a string representation using K's and V's
// String functions.
func String[K interface {
	comparable
	fmt.Stringer
}, V fmt.Stringer](m *Map[K, V]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

type strKV struct {
	k string
	v string
}

// StringFunc converts m to a string representation with the help of
// strK and strV functions to stringify m's keys and values.
func StringFunc[K comparable, V any](m *Map[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if m == nil || m.Len() == 0 {
		return "densemap.Map[]"
	}
	strs := make([]strKV, m.Len())
	s := 0
	i := 0
	for it := m.Begin(); it != m.End(); it = it.Next() {
		kv := &strs[i]
		kv.k = strK(it.Key())
		kv.v = strV(*it.Value())
		s += len(kv.k) + len(kv.v)
		i++
	}
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("densemap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("densemap.Map[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if the same set of keys and values are in m1 and
// m2. Values are compared using ==.
func Equal[K, V comparable](m1, m2 *Map[K, V]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Begin(); it != m1.End(); it = it.Next() {
		v2, ok := m2.Get(it.Key())
		if !ok || *it.Value() != v2 {
			return false
		}
	}
	return true
}

// EqualFunc returns true if the same set of keys and values are in m1
// and m2. Values are compared using eq.
func EqualFunc[K comparable, V any](m1, m2 *Map[K, V], eq func(V, V) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Begin(); it != m1.End(); it = it.Next() {
		v2, ok := m2.Get(it.Key())
		if !ok || !eq(*it.Value(), v2) {
			return false
		}
	}
	return true
}
