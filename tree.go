// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import "golang.org/x/exp/constraints"

// Rotations holds the running tally of every rebalancing rotation the tree
// has performed, by kind. The counters are purely observational.
type Rotations struct {
	LL uint64
	LR uint64
	RL uint64
	RR uint64
}

// Total is the sum over all four rotation kinds.
func (r Rotations) Total() uint64 {
	return r.LL + r.LR + r.RL + r.RR
}

// Tree - an AVL balanced ordered map from K to V. The zero value is an
// empty map-variant tree ready for use; New is the usual constructor.
type Tree[K constraints.Ordered, V any] struct {
	root     *node[K, V]
	count    int
	counting bool // duplicate inserts bump the copy counter, not the value
	rot      Rotations
}

// New - create an initially empty tree
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len - number of distinct keys currently in the tree
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty - true if the tree contains no keys
func (t *Tree[K, V]) IsEmpty() bool {
	return t.count == 0
}

// Rotations - the rotation tallies accumulated so far
func (t *Tree[K, V]) Rotations() Rotations {
	return t.rot
}

// Clear - drop every node and reset the count. Ownership runs strictly
// parent to child with no back-references, so releasing the root releases
// the whole tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}
