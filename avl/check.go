// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, balance and the stored metadata of every
// node, and that the count matches the nodes actually present
func (tree *Tree[T]) Check() error {
	_, nodes, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if nodes != tree.count || tree.allocator.totalNodes != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
// returns the recomputed height and node count of the sub-tree
func (tree *Tree[T]) check(p *Node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return -1, 0, nil
	}

	if nil != low && !tree.less(*low, p.value) {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && !tree.less(p.value, *high) {
		return 0, 0, fault.ErrOrderViolation
	}

	lh, ln, err := tree.check(p.left, low, &p.value)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := tree.check(p.right, &p.value, high)
	if nil != err {
		return 0, 0, err
	}

	height := 1 + max(lh, rh)
	nodes := 1 + ln + rn

	switch {
	case p.height != height:
		return 0, 0, fault.ErrHeightMismatch
	case p.balance != rh-lh:
		return 0, 0, fault.ErrBalanceMismatch
	case p.balance < -1 || p.balance > 1:
		return 0, 0, fault.ErrBalanceOutOfRange
	case p.nodes != nodes:
		return 0, 0, fault.ErrNodeCountMismatch
	}
	return height, nodes, nil
}
