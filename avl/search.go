// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Below - the node with the greatest key strictly less than key
func (tree *Tree) Below(key Item) *Node {
	var best *Node
	p := tree.root
	for nil != p {
		if -1 == p.key.Compare(key) {
			best = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return best
}

// AtOrAbove - the node with the least key greater than or equal to key
func (tree *Tree) AtOrAbove(key Item) *Node {
	var best *Node
	p := tree.root
	for nil != p {
		if p.key.Compare(key) >= 0 {
			best = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return best
}
