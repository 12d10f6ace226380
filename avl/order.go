// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Order - selects a traversal
type Order int

// the classic traversals
const (
	InOrder   Order = iota // left, self, right
	PreOrder  Order = iota // self, left, right
	PostOrder Order = iota // left, right, self
)

var orderNames = map[Order]string{
	InOrder:   "in-order",
	PreOrder:  "pre-order",
	PostOrder: "post-order",
}

// String - name of the traversal
func (order Order) String() string {
	if s, ok := orderNames[order]; ok {
		return s
	}
	return "unknown"
}

// ParseOrder - convert a traversal name to an Order
func ParseOrder(s string) (Order, error) {
	switch s {
	case "in-order", "inorder", "in":
		return InOrder, nil
	case "pre-order", "preorder", "pre":
		return PreOrder, nil
	case "post-order", "postorder", "post":
		return PostOrder, nil
	default:
		return InOrder, fault.ErrInvalidTraversalOrder
	}
}
