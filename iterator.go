// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import "golang.org/x/exp/constraints"

// Iterator is used to iterate over the whole tree in ascending key order.
// The stack holds the path of nodes still to be unwound; mutating the tree
// while iterating invalidates the iterator.
type Iterator[K constraints.Ordered, V any] struct {
	stack []*node[K, V]
}

// Iterator - start a full in-order traversal
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.descend(t.root)
	return it
}

func (it *Iterator[K, V]) descend(p *node[K, V]) {
	for p != nil {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// Next returns the next key and value, or false when the traversal is done.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	if len(it.stack) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	p := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.descend(p.right)
	return p.key, p.value, true
}
