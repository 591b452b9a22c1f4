// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

// Delete - remove a key. Returns true when the key was present and its
// node spliced out; deleting an absent key is a no-op returning false.
// For the counting variant a surplus copy is decremented in place and
// false is returned until the last copy goes.
func (t *Tree[K, V]) Delete(key K) bool {
	root, removed, _ := t.remove(t.root, key)
	t.root = root
	if removed {
		t.count--
	}
	return removed
}

// remove descends to the key and repairs balance factors on the way back
// up. shrunk reports that the subtree rooted at the returned node lost a
// level, telling the caller whether repair must continue.
func (t *Tree[K, V]) remove(p *node[K, V], key K) (np *node[K, V], removed, shrunk bool) {
	if p == nil { // key is not in the tree
		return nil, false, false
	}
	switch {
	case key < p.key:
		p.left, removed, shrunk = t.remove(p.left, key)
		if shrunk {
			p, shrunk = t.rebalanceLeftShrink(p)
		}
	case key > p.key:
		p.right, removed, shrunk = t.remove(p.right, key)
		if shrunk {
			p, shrunk = t.rebalanceRightShrink(p)
		}
	default:
		if t.counting && p.copies > 1 {
			p.copies--
			return p, false, false
		}
		return t.removeNode(p)
	}
	return p, removed, shrunk
}

// removeNode splices p out of the tree. With at most one child the child
// takes p's place and the branch is one level shorter. With two children
// p is not moved: it is relabeled with the key and payload of a donor
// node adjacent in key order, and the donor is spliced out of its subtree
// instead. The donor comes from the deeper subtree (rightmost node of the
// left subtree when the balance leans left or is even, leftmost of the
// right subtree otherwise), which lowers the chance that the splice
// unbalances the tree.
func (t *Tree[K, V]) removeNode(p *node[K, V]) (np *node[K, V], removed, shrunk bool) {
	switch {
	case p.right == nil:
		return p.left, true, true
	case p.left == nil:
		return p.right, true, true
	}
	var donor *node[K, V]
	switch p.balance {
	case 0, -1:
		p.left, donor, shrunk = t.spliceRightmost(p.left)
		p.key, p.value, p.copies = donor.key, donor.value, donor.copies
		if shrunk {
			p, shrunk = t.rebalanceLeftShrink(p)
		}
	case +1:
		p.right, donor, shrunk = t.spliceLeftmost(p.right)
		p.key, p.value, p.copies = donor.key, donor.value, donor.copies
		if shrunk {
			p, shrunk = t.rebalanceRightShrink(p)
		}
	default:
		panic(balanceFault(p.balance))
	}
	return p, true, shrunk
}

// spliceRightmost unhooks the rightmost node of the subtree and hands it
// back as the donor, rebalancing the walked spine on the way up. The
// donor's sole possible child replaces it, so its branch always shrinks.
func (t *Tree[K, V]) spliceRightmost(p *node[K, V]) (np, donor *node[K, V], shrunk bool) {
	if p.right == nil {
		return p.left, p, true
	}
	p.right, donor, shrunk = t.spliceRightmost(p.right)
	if shrunk {
		p, shrunk = t.rebalanceRightShrink(p)
	}
	return p, donor, shrunk
}

// spliceLeftmost is the mirror image of spliceRightmost.
func (t *Tree[K, V]) spliceLeftmost(p *node[K, V]) (np, donor *node[K, V], shrunk bool) {
	if p.left == nil {
		return p.right, p, true
	}
	p.left, donor, shrunk = t.spliceLeftmost(p.left)
	if shrunk {
		p, shrunk = t.rebalanceLeftShrink(p)
	}
	return p, donor, shrunk
}

// rebalanceLeftShrink repairs p after its left subtree lost a level. The
// returned flag reports whether p's subtree is itself shorter now. Unlike
// insert-time repair a rotation here can keep the shrink propagating: the
// single rotation stops it only when the promoted child's balance was
// exactly 0 beforehand, in which case the subtree height is preserved.
func (t *Tree[K, V]) rebalanceLeftShrink(p *node[K, V]) (*node[K, V], bool) {
	switch p.balance {
	case -1: // the taller side shrank, so the parent shrank too
		p.balance = 0
		return p, true
	case 0: // now leaning right, height unchanged
		p.balance = +1
		return p, false
	case +1: // would reach +2
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			t.rot.RR++
			p.right = p1.left
			p1.left = p
			if p1.balance == 0 {
				p.balance = +1
				p1.balance = -1
				return p1, false
			}
			p.balance = 0
			p1.balance = 0
			return p1, true
		}
		// double RL rotation
		t.rot.RL++
		p2 := p1.left
		p1.left = p2.right
		p2.right = p1
		p.right = p2.left
		p2.left = p
		if p2.balance == +1 {
			p.balance = -1
		} else {
			p.balance = 0
		}
		if p2.balance == -1 {
			p1.balance = +1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return p2, true
	default:
		panic(balanceFault(p.balance))
	}
}

// rebalanceRightShrink is the mirror image of rebalanceLeftShrink.
func (t *Tree[K, V]) rebalanceRightShrink(p *node[K, V]) (*node[K, V], bool) {
	switch p.balance {
	case +1:
		p.balance = 0
		return p, true
	case 0:
		p.balance = -1
		return p, false
	case -1:
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			t.rot.LL++
			p.left = p1.right
			p1.right = p
			if p1.balance == 0 {
				p.balance = -1
				p1.balance = +1
				return p1, false
			}
			p.balance = 0
			p1.balance = 0
			return p1, true
		}
		// double LR rotation
		t.rot.LR++
		p2 := p1.right
		p1.right = p2.left
		p2.left = p1
		p.left = p2.right
		p2.right = p
		if p2.balance == -1 {
			p.balance = +1
		} else {
			p.balance = 0
		}
		if p2.balance == +1 {
			p1.balance = -1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return p2, true
	default:
		panic(balanceFault(p.balance))
	}
}
