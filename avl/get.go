// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item
func (tree *Tree[T]) Get(index int) *Node[T] {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get[T any](index int, p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	nl := p.left.count()

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
