// Package codes provides immutable bidirectional tables between enumeration
// values and the string codes used on the wire.
package codes

import "fmt"

// Entry binds one enumeration value to its wire code and display label.
type Entry[T comparable] struct {
	Value T
	Code  string
	Label string
}

// Table maps enumeration values to wire codes and back. A Table is built once
// and never mutated, so it may be shared by any number of goroutines.
type Table[T comparable] struct {
	entries []Entry[T]
	byValue map[T]int
	byCode  map[string]int
}

// New builds a table from entries. It panics when a value or a code appears
// twice, since that makes the mapping non-injective.
func New[T comparable](entries ...Entry[T]) *Table[T] {
	t := &Table[T]{
		entries: entries,
		byValue: make(map[T]int, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := t.byValue[e.Value]; dup {
			panic(fmt.Sprintf("codes: duplicate value for code %q", e.Code))
		}
		if _, dup := t.byCode[e.Code]; dup {
			panic(fmt.Sprintf("codes: duplicate code %q", e.Code))
		}
		t.byValue[e.Value] = i
		t.byCode[e.Code] = i
	}
	return t
}

// Code returns the wire code for v, or "" if v is not in the table.
func (t *Table[T]) Code(v T) string {
	if i, ok := t.byValue[v]; ok {
		return t.entries[i].Code
	}
	return ""
}

// Label returns the human-readable label for v. Entries without an explicit
// label fall back to their code.
func (t *Table[T]) Label(v T) string {
	i, ok := t.byValue[v]
	if !ok {
		return ""
	}
	if t.entries[i].Label != "" {
		return t.entries[i].Label
	}
	return t.entries[i].Code
}

// Parse returns the value whose wire code is exactly code.
func (t *Table[T]) Parse(code string) (T, bool) {
	if i, ok := t.byCode[code]; ok {
		return t.entries[i].Value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether v is a member of the table.
func (t *Table[T]) Contains(v T) bool {
	_, ok := t.byValue[v]
	return ok
}

// Codes returns every wire code in declaration order.
func (t *Table[T]) Codes() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Code
	}
	return out
}

// Values returns every value in declaration order.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}
	return out
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}
