// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Comparer - a value that can order itself against another value of
// the same type, returning -1, 0 or +1
type Comparer[T any] interface {
	Compare(T) int
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root      *Node[T]
	count     int
	less      func(a T, b T) bool
	allocator allocator[T]
}

// New - create an initially empty tree ordered by the < operator
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Less[T])
}

// NewFunc - create an initially empty tree ordered by a strict less
// function
func NewFunc[T any](less func(a T, b T) bool) *Tree[T] {
	if nil == less {
		panic("avl: nil less function")
	}
	return &Tree[T]{
		root:  nil,
		count: 0,
		less:  less,
	}
}

// NewComparable - create an initially empty tree of items that
// implement Compare
func NewComparable[T Comparer[T]]() *Tree[T] {
	return NewFunc(func(a T, b T) bool {
		return a.Compare(b) < 0
	})
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the root node, an empty tree and a single node
// tree both report zero
func (tree *Tree[T]) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.height
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Clear - discard all nodes
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.allocator.release()
}

// Move - transfer the whole tree to a new owner leaving the receiver
// empty
func (tree *Tree[T]) Move() *Tree[T] {
	moved := &Tree[T]{
		less: tree.less,
	}
	moved.take(tree)
	return moved
}

// MoveFrom - discard the current contents and take over those of src,
// src is left empty
func (tree *Tree[T]) MoveFrom(src *Tree[T]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.take(src)
}

func (tree *Tree[T]) take(src *Tree[T]) {
	tree.root = src.root
	tree.count = src.count
	tree.allocator = src.allocator
	if nil != src.less {
		tree.less = src.less
	}

	src.root = nil
	src.count = 0
	src.allocator = allocator[T]{}
}

// ChildrenAtDepth - returns all children in a specific depth of a
// sub-tree, depth zero is the node itself
func (p *Node[T]) ChildrenAtDepth(depth uint) []*Node[T] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	return nodes
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - the left sub-tree, nil if absent
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - longest path from this node to a leaf
func (p *Node[T]) Height() int {
	return p.height
}

// Balance - right sub-tree height minus left sub-tree height
func (p *Node[T]) Balance() int {
	return p.balance
}

// Nodes - number of values in this sub-tree
func (p *Node[T]) Nodes() int {
	return p.nodes
}
