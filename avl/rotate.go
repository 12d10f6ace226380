// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// restore the balance of a node whose children are already balanced
// returns the new sub-tree root
func rebalance[T any](p *Node[T]) *Node[T] {
	if nil == p {
		panic("avl: rebalance of nil node")
	}

	switch p.balance {
	case -2: // left branch too high
		if p.left.balance <= 0 {
			// single LL rotation
			return rotateRight(p)
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case +2: // right branch too high
		if p.right.balance >= 0 {
			// single RR rotation
			return rotateLeft(p)
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)

	default:
		return p
	}
}

// lift the left child of a into its place
//
//	    a            b
//	   / \          / \
//	  b   c   →    d   a
//	 / \              / \
//	d   e            e   c
func rotateRight[T any](a *Node[T]) *Node[T] {
	b := a.left
	e := b.right

	a.left = e
	b.right = a

	update(a)
	update(b)
	return b
}

// lift the right child of b into its place
//
//	  b                a
//	 / \              / \
//	c   a     →      b   d
//	   / \          / \
//	  e   d        c   e
func rotateLeft[T any](b *Node[T]) *Node[T] {
	a := b.right
	e := a.left

	b.right = e
	a.left = b

	update(b)
	update(a)
	return a
}
