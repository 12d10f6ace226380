// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique ordered values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records its height (a leaf is zero), its balance (right
// height minus left height) and the number of values in its
// sub-tree.  The metadata is refreshed bottom-up after every
// structural change so that rank queries and the balance decision
// only ever look at the children of a node.
//
// There are no parent pointers; every node is owned by exactly one
// parent and the nodes of a tree are carved from blocks held by that
// tree, so clearing or moving a tree releases all of them at once.
//
// Traversals are returned as iter.Seq values so they can be used
// directly in a range statement and stopped early.
package avl
