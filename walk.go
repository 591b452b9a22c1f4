// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import "golang.org/x/exp/constraints"

// WalkFn is used when walking the tree in key order. It takes a key and
// value, returning if the walk should be terminated.
type WalkFn[K constraints.Ordered, V any] func(key K, value V) bool

// Walk - visit every key in ascending order until fn returns true
func (t *Tree[K, V]) Walk(fn WalkFn[K, V]) {
	t.root.walk(fn)
}

func (p *node[K, V]) walk(fn WalkFn[K, V]) bool {
	if p == nil {
		return false
	}
	if p.left.walk(fn) {
		return true
	}
	if fn(p.key, p.value) {
		return true
	}
	return p.right.walk(fn)
}

// Keys - every key in ascending order. The result is allocated to exactly
// Len entries and filled by an in-order walk.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, t.count)
	i := 0
	t.root.fillKeys(keys, &i)
	return keys
}

func (p *node[K, V]) fillKeys(keys []K, i *int) {
	if p == nil {
		return
	}
	p.left.fillKeys(keys, i)
	keys[*i] = p.key
	*i++
	p.right.fillKeys(keys, i)
}
