// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// block sizes for the node allocator
const (
	minimumBlockSize = 16
	maximumBlockSize = 4096
)

// a node in the tree
type Node[T any] struct {
	left    *Node[T] // left sub-tree
	right   *Node[T] // right sub-tree
	value   T        // the stored value
	height  int      // leaf = 0
	balance int      // -1, 0, +1
	nodes   int      // values in this sub-tree including this node
}

// per-tree node storage
//
// nodes are taken from the unused tail of the current block, a full
// block is never grown, a fresh one is started instead so addresses
// of existing nodes do not change
type allocator[T any] struct {
	block      []Node[T] // current block
	blocks     int       // number of blocks started
	totalNodes int       // total nodes handed out
}

// allocate a new leaf node
func (a *allocator[T]) newNode(value T) *Node[T] {
	if len(a.block) == cap(a.block) {
		size := minimumBlockSize << a.blocks
		if size > maximumBlockSize || size <= 0 {
			size = maximumBlockSize
		}
		a.block = make([]Node[T], 0, size)
		a.blocks += 1
	}
	a.block = a.block[:len(a.block)+1]
	p := &a.block[len(a.block)-1]
	p.value = value
	p.height = 0
	p.balance = 0
	p.nodes = 1
	a.totalNodes += 1
	return p
}

// drop every block, nodes become unreachable once the tree no longer
// refers to them
func (a *allocator[T]) release() {
	a.block = nil
	a.blocks = 0
	a.totalNodes = 0
}
