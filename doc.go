// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

// Package avl - an AVL balanced ordered map and its counting multiset
// variant.
//
// Note: an individual tree is not thread safe, so either access it from
//       a single goroutine only or guard it with a mutex/rwmutex.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, with the deletion
// procedure split into mirror-image left and right halves so that the
// donor node is taken from the deeper subtree, which lowers the chance
// that a deletion unbalances the tree.
//
// Keys are any ordered type; a duplicate insert overwrites the stored
// value in the map variant and bumps a per-node copy counter in the
// multiset variant.
package avl
