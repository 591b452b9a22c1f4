// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

// Insert - add a key with its value, or revisit an existing key: the map
// variant overwrites the stored value, the counting variant bumps the
// node's copy counter. Returns true when an existing key was updated and
// false when a new node was added.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	root, updated, _ := t.insert(t.root, key, value)
	t.root = root
	if !updated {
		t.count++
	}
	return updated
}

// insert descends to the insertion point and repairs balance factors on
// the way back up. grown reports that the subtree rooted at the returned
// node got one level taller, telling the caller whether repair must
// continue; a rotation always absorbs the growth. The left and right arms
// are exact mirror images.
func (t *Tree[K, V]) insert(p *node[K, V], key K, value V) (np *node[K, V], updated, grown bool) {
	if p == nil {
		return newNode(key, value), false, true
	}
	switch {
	case key < p.key:
		p.left, updated, grown = t.insert(p.left, key, value)
		if grown {
			switch p.balance {
			case +1: // the shorter side caught up
				p.balance = 0
				grown = false
			case 0: // now leaning left, parent subtree grew
				p.balance = -1
			case -1: // would reach -2
				p = t.rebalanceLeftGrowth(p)
				grown = false
			default:
				panic(balanceFault(p.balance))
			}
		}
	case key > p.key:
		p.right, updated, grown = t.insert(p.right, key, value)
		if grown {
			switch p.balance {
			case -1:
				p.balance = 0
				grown = false
			case 0:
				p.balance = +1
			case +1:
				p = t.rebalanceRightGrowth(p)
				grown = false
			default:
				panic(balanceFault(p.balance))
			}
		}
	default: // key already present, no structural change
		if t.counting {
			p.copies++
		} else {
			p.value = value
		}
		updated = true
	}
	return p, updated, grown
}

// rebalanceLeftGrowth restores the invariant after the left subtree of an
// already left-leaning node has grown.
func (t *Tree[K, V]) rebalanceLeftGrowth(p *node[K, V]) *node[K, V] {
	p1 := p.left
	if p1.balance == -1 {
		// single LL rotation
		t.rot.LL++
		p.left = p1.right
		p1.right = p
		p.balance = 0
		p = p1
	} else {
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
		p = p2
	}
	p.balance = 0
	return p
}

// rebalanceRightGrowth is the mirror image of rebalanceLeftGrowth.
func (t *Tree[K, V]) rebalanceRightGrowth(p *node[K, V]) *node[K, V] {
	p1 := p.right
	if p1.balance == +1 {
		// single RR rotation
		t.rot.RR++
		p.right = p1.left
		p1.left = p
		p.balance = 0
		p = p1
	} else {
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
		p = p2
	}
	p.balance = 0
	return p
}
