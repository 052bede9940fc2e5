// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 for receiver <, ==, > argument
type Item interface {
	Compare(interface{}) int
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node
	key    Item  // key part for ordering
	height int   // height of the sub-tree rooted here
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

func (p *Node) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute height from the children
func (p *Node) fix() {
	l := p.left.getHeight()
	r := p.right.getHeight()
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}

// left height minus right height
func (p *Node) balance() int {
	return p.left.getHeight() - p.right.getHeight()
}
