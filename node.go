// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is a single tree node. balance is the height of the right subtree
// minus the height of the left subtree and must stay within {-1, 0, +1};
// any other value means the tree is corrupt.
type node[K constraints.Ordered, V any] struct {
	key     K
	value   V
	copies  int
	balance int8
	left    *node[K, V]
	right   *node[K, V]
}

func newNode[K constraints.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		copies: 1,
	}
}

func balanceFault(b int8) string {
	return fmt.Sprintf("avl: balance factor %d is out of range", b)
}
