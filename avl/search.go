// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the value is stored in the tree
func (tree *Tree[T]) Contains(value T) bool {
	p := tree.root
	for nil != p {
		switch {
		case tree.less(value, p.value):
			p = p.left
		case tree.less(p.value, value):
			p = p.right
		default:
			return true
		}
	}
	return false
}

// Search - find a specific value
// returns the node and its zero based index, or nil and -1
func (tree *Tree[T]) Search(value T) (*Node[T], int) {
	return tree.search(value, tree.root, 0)
}

func (tree *Tree[T]) search(value T, p *Node[T], index int) (*Node[T], int) {
	if nil == p {
		return nil, -1
	}

	switch {
	case tree.less(value, p.value):
		return tree.search(value, p.left, index)
	case tree.less(p.value, value):
		return tree.search(value, p.right, index+p.left.count()+1)
	default:
		return p, index + p.left.count()
	}
}

// number of values in a possibly absent sub-tree
func (p *Node[T]) count() int {
	if nil == p {
		return 0
	}
	return p.nodes
}
