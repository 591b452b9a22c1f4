// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/arborlane/go-avl"
)

// 22 keys, one of which (14) is duplicated
var demoKeys = []int{8, 9, 11, 15, 19, 20, 21, 7, 3, 2, 1, 5, 6, 4, 13, 14, 10, 12, 14, 17, 16, 18}

// runDemo walks the fixed key sequence through a counting tree, dumping
// the shape after every step so the rebalancing can be followed by eye.
func runDemo(w io.Writer) error {
	set := avl.NewMultiset[int]()

	for _, k := range demoKeys {
		added := set.Add(k)
		fmt.Fprintf(w, "add %d (new key: %v), tree contains %d keys\n", k, added, set.Len())
		set.Dump(w)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "*** balanced tree completed; ordered keys follow ***\n%v\n\n", set.Keys())

	for _, k := range demoKeys {
		removed := set.Remove(k)
		fmt.Fprintf(w, "remove %d (last copy: %v), tree contains %d keys\n", k, removed, set.Len())
		set.Dump(w)
		fmt.Fprintln(w)
	}

	if !set.IsEmpty() {
		return fmt.Errorf("%d keys remain after removing everything", set.Len())
	}
	fmt.Fprintln(w, "all done")
	return nil
}
