// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest value
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Traverse - the values in the selected order
func (tree *Tree[T]) Traverse(order Order) iter.Seq[T] {
	switch order {
	case InOrder:
		return tree.InOrder()
	case PreOrder:
		return tree.PreOrder()
	case PostOrder:
		return tree.PostOrder()
	default:
		panic("avl: unknown traversal order")
	}
}

// Walk - call visit once for every value in the selected order
func (tree *Tree[T]) Walk(order Order, visit func(T)) {
	for v := range tree.Traverse(order) {
		visit(v)
	}
}

// stack of pending nodes, the longest root to leaf path has height+1
// nodes
func (tree *Tree[T]) stack() []*Node[T] {
	return make([]*Node[T], 0, tree.Height()+2)
}

// InOrder - values in ascending order
func (tree *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := tree.stack()
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.value) {
				return
			}
			p = p.right
		}
	}
}

// Backward - values in descending order
func (tree *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := tree.stack()
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.right
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.value) {
				return
			}
			p = p.left
		}
	}
}

// PreOrder - each node before its left then right sub-trees
func (tree *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if nil == tree.root {
			return
		}
		stack := append(tree.stack(), tree.root)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.value) {
				return
			}
			if nil != p.right {
				stack = append(stack, p.right)
			}
			if nil != p.left {
				stack = append(stack, p.left)
			}
		}
	}
}

// PostOrder - each node after its left then right sub-trees
func (tree *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := tree.stack()
		var visited *Node[T]
		p := tree.root
		for nil != p || len(stack) > 0 {
			if nil != p {
				stack = append(stack, p)
				p = p.left
				continue
			}
			top := stack[len(stack)-1]
			if nil != top.right && visited != top.right {
				p = top.right
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(top.value) {
				return
			}
			visited = top
		}
	}
}
