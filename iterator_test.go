// Copyright (c) The densemap authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densemap

import (
	"maps"
	"testing"
)

func TestFind(t *testing.T) {
	m := New(
		KeyValue[string, int]{"one", 1},
		KeyValue[string, int]{"two", 2},
	)
	it := m.Find("one")
	if it == m.End() {
		t.Fatal(`Find("one") returned End`)
	}
	if it.Key() != "one" || *it.Value() != 1 {
		t.Errorf("Find returned [%s: %d]", it.Key(), *it.Value())
	}
	if it := m.Find("three"); it != m.End() {
		t.Error(`Find("three") did not return End`)
	}
	if it := New[string, int]().Find("one"); it != it.m.End() {
		t.Error("Find on empty map did not return End")
	}
}

func TestIterationOrder(t *testing.T) {
	m := New[int, int]()
	const count = 50
	for i := 0; i < count; i++ {
		m.Insert(i, i*i)
	}
	// Without erases, storage order is insertion order.
	i := 0
	for it := m.Begin(); it != m.End(); it = it.Next() {
		if it.Key() != i || *it.Value() != i*i {
			t.Errorf("position %d: got [%d: %d]", i, it.Key(), *it.Value())
		}
		i++
	}
	if i != count {
		t.Errorf("visited %d entries, want %d", i, count)
	}
}

func TestIterationAfterErase(t *testing.T) {
	m := New[int, int]()
	expected := make(map[int]int)
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
		expected[i] = i
	}
	for i := 0; i < 100; i += 3 {
		m.Erase(i)
		delete(expected, i)
	}
	// Order is no longer insertion order, but every remaining entry
	// shows up exactly once.
	seen := make(map[int]int, len(expected))
	for it := m.Begin(); it != m.End(); it = it.Next() {
		if _, dup := seen[it.Key()]; dup {
			t.Errorf("key %d visited twice", it.Key())
		}
		seen[it.Key()] = *it.Value()
	}
	if !maps.Equal(seen, expected) {
		t.Errorf("iteration mismatch:\ngot:  %v\nwant: %v", seen, expected)
	}
}

func TestIteratorValueWrite(t *testing.T) {
	m := New(
		KeyValue[string, int]{"a", 1},
		KeyValue[string, int]{"b", 2},
	)
	for it := m.Begin(); it != m.End(); it = it.Next() {
		*it.Value() *= 10
	}
	if v, _ := m.Get("a"); v != 10 {
		t.Errorf(`Get("a") = %d, want 10`, v)
	}
	if v, _ := m.Get("b"); v != 20 {
		t.Errorf(`Get("b") = %d, want 20`, v)
	}
}

func TestIteratorEquality(t *testing.T) {
	m := New(KeyValue[int, int]{1, 1})
	if m.Begin() == m.End() {
		t.Error("Begin equals End on non-empty map")
	}
	if m.Begin().Next() != m.End() {
		t.Error("advancing past the single entry did not reach End")
	}
	empty := New[int, int]()
	if empty.Begin() != empty.End() {
		t.Error("Begin does not equal End on empty map")
	}
}

func TestRangeFuncs(t *testing.T) {
	m := New(
		KeyValue[string, string]{"Avenue", "AVE"},
		KeyValue[string, string]{"Street", "ST"},
		KeyValue[string, string]{"Court", "CT"},
	)

	t.Run("All", func(t *testing.T) {
		exp := map[string]string{
			"Avenue": "AVE",
			"Street": "ST",
			"Court":  "CT",
		}
		got := make(map[string]string)
		for k, v := range m.All() {
			got[k] = v
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		exp := map[string]struct{}{
			"Avenue": {},
			"Street": {},
			"Court":  {},
		}
		got := make(map[string]struct{})
		for k := range m.Keys() {
			got[k] = struct{}{}
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("Values", func(t *testing.T) {
		exp := map[string]struct{}{
			"AVE": {},
			"ST":  {},
			"CT":  {},
		}
		got := make(map[string]struct{})
		for v := range m.Values() {
			got[v] = struct{}{}
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("early-stop", func(t *testing.T) {
		n := 0
		for range m.All() {
			n++
			break
		}
		if n != 1 {
			t.Errorf("yielded %d entries after break", n)
		}
	})
}

func TestCollect(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2, "c": 3}
	m := Collect(maps.All(src))
	if m.Len() != len(src) {
		t.Fatalf("Len = %d, want %d", m.Len(), len(src))
	}
	for k, v := range src {
		if got, ok := m.Get(k); !ok || got != v {
			t.Errorf("Get(%q) = %d, %t; want %d, true", k, got, ok, v)
		}
	}
}
