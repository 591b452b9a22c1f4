// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

// Get - look up the value stored for a key. The second result is false
// when the key is absent; a miss is a normal outcome, never an error.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if p := t.lookup(key); p != nil {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Contains - true if the key is in the tree
func (t *Tree[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// lookup descends iteratively from the root, left on smaller, right on
// larger, stopping on the node whose key is neither.
func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	p := t.root
	for p != nil {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
