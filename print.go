// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import (
	"fmt"
	"io"
	"strings"
)

// Dump - write a depth-indented dump of the keys to w, right subtree
// first, so the rightmost key appears at the top and the tree reads as if
// rotated a quarter turn counterclockwise. A debugging aid only.
func (t *Tree[K, V]) Dump(w io.Writer) {
	t.root.dump(w, 0)
}

func (p *node[K, V]) dump(w io.Writer, depth int) {
	if p == nil {
		return
	}
	p.right.dump(w, depth+1)
	fmt.Fprintf(w, "%s%v\n", strings.Repeat("    ", depth), p.key)
	p.left.dump(w, depth+1)
}
