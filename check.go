// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import "fmt"

// Check - verify the structural invariants: every stored balance factor
// equals the actual height difference of its subtrees and stays within
// one, keys strictly increase in order, copy counters are positive, and
// the reachable node count agrees with Len. A healthy tree never fails;
// intended for tests and debugging.
func (t *Tree[K, V]) Check() error {
	count, _, err := t.root.check()
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("avl: %d reachable nodes but recorded count is %d", count, t.count)
	}
	return nil
}

// internal: consistency checker, returns node count and height
func (p *node[K, V]) check() (int, int, error) {
	if p == nil {
		return 0, 0, nil
	}
	if p.balance < -1 || p.balance > +1 {
		return 0, 0, fmt.Errorf("avl: balance factor %d at key %v is out of range", p.balance, p.key)
	}
	if p.copies < 1 {
		return 0, 0, fmt.Errorf("avl: copy counter %d at key %v", p.copies, p.key)
	}
	if p.left != nil && p.left.key >= p.key {
		return 0, 0, fmt.Errorf("avl: left child %v not below key %v", p.left.key, p.key)
	}
	if p.right != nil && p.right.key <= p.key {
		return 0, 0, fmt.Errorf("avl: right child %v not above key %v", p.right.key, p.key)
	}
	lc, lh, err := p.left.check()
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := p.right.check()
	if err != nil {
		return 0, 0, err
	}
	if int(p.balance) != rh-lh {
		return 0, 0, fmt.Errorf("avl: balance factor %d at key %v but actual height difference is %d", p.balance, p.key, rh-lh)
	}
	h := lh
	if rh > h {
		h = rh
	}
	return lc + rc + 1, h + 1, nil
}
