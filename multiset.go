// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import (
	"io"

	"golang.org/x/exp/constraints"
)

// Multiset - the counting variant of the tree. Repeated additions of the
// same key share a single node and bump its copy counter, so the tree
// structure (and Len) tracks distinct keys only.
type Multiset[K constraints.Ordered] struct {
	tree Tree[K, struct{}]
}

// NewMultiset - create an initially empty multiset
func NewMultiset[K constraints.Ordered]() *Multiset[K] {
	m := &Multiset[K]{}
	m.tree.counting = true
	return m
}

// Add - record one copy of the key. Returns true when the key was not
// present before.
func (m *Multiset[K]) Add(key K) bool {
	return !m.tree.Insert(key, struct{}{})
}

// Remove - drop one copy of the key. Returns true only when the last copy
// goes and the node is spliced out; removing a surplus copy, like removing
// an absent key, returns false.
func (m *Multiset[K]) Remove(key K) bool {
	return m.tree.Delete(key)
}

// Count - the number of copies recorded for the key, 0 when absent
func (m *Multiset[K]) Count(key K) int {
	if p := m.tree.lookup(key); p != nil {
		return p.copies
	}
	return 0
}

// Contains - true if at least one copy of the key is recorded
func (m *Multiset[K]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Len - number of distinct keys
func (m *Multiset[K]) Len() int {
	return m.tree.Len()
}

// IsEmpty - true if no keys are recorded
func (m *Multiset[K]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Keys - every distinct key in ascending order
func (m *Multiset[K]) Keys() []K {
	return m.tree.Keys()
}

// Clear - drop every key
func (m *Multiset[K]) Clear() {
	m.tree.Clear()
}

// Rotations - the rotation tallies of the underlying tree
func (m *Multiset[K]) Rotations() Rotations {
	return m.tree.Rotations()
}

// Check - verify the underlying tree's invariants
func (m *Multiset[K]) Check() error {
	return m.tree.Check()
}

// Dump - write a depth-indented key dump to w
func (m *Multiset[K]) Dump(w io.Writer) {
	m.tree.Dump(w)
}
