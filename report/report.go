// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report - human readable summary of a tree of integers
package report

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/avltree/report Tree

// Tree - the queries needed to produce a report
type Tree interface {
	IsEmpty() bool
	Count() int
	Height() int
	Traverse(order avl.Order) iter.Seq[int]
	Print(w io.Writer) int
}

// Options - select the optional parts of a report
type Options struct {
	Traversals []avl.Order
	PrintTree  bool
}

// Write - output the summary lines followed by one line per
// traversal and optionally the tree drawing
//
//	empty: false
//	size: 3
//	height: 1
//	in-order: 1 2 3
func Write(w io.Writer, tree Tree, options Options) error {
	var buffer bytes.Buffer

	fmt.Fprintf(&buffer, "empty: %t\n", tree.IsEmpty())
	fmt.Fprintf(&buffer, "size: %d\n", tree.Count())
	fmt.Fprintf(&buffer, "height: %d\n", tree.Height())

	for _, order := range options.Traversals {
		fmt.Fprintf(&buffer, "%s:", order)
		for v := range tree.Traverse(order) {
			fmt.Fprintf(&buffer, " %d", v)
		}
		buffer.WriteString("\n")
	}

	if options.PrintTree {
		depth := tree.Print(&buffer)
		fmt.Fprintf(&buffer, "levels: %d\n", depth)
	}

	_, err := buffer.WriteTo(w)
	return err
}
