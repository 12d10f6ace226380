// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
// returns false if the value was already present
func (tree *Tree[T]) Insert(value T) bool {
	added := false
	tree.root, added = tree.insert(value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func (tree *Tree[T]) insert(value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return tree.allocator.newNode(value), true
	}

	added := false
	switch {
	case tree.less(value, p.value):
		p.left, added = tree.insert(value, p.left)
	case tree.less(p.value, value):
		p.right, added = tree.insert(value, p.right)
	default: // already present
		return p, false
	}

	if !added {
		return p, false
	}

	update(p)
	return rebalance(p), true
}

// recompute the metadata of a node from its children
func update[T any](p *Node[T]) {
	if nil == p {
		panic("avl: update of nil node")
	}

	lh, ln := -1, 0
	if nil != p.left {
		lh = p.left.height
		ln = p.left.nodes
	}
	rh, rn := -1, 0
	if nil != p.right {
		rh = p.right.height
		rn = p.right.nodes
	}

	p.height = 1 + max(lh, rh)
	p.balance = rh - lh
	p.nodes = 1 + ln + rn
}
