// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree
//
// returns false if the key was already present
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = insert(key, tree.root, nil)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the new sub-tree root
func insert(key Item, p *Node, up *Node) (*Node, bool) {
	if nil == p {
		return &Node{
			up:     up,
			key:    key,
			height: 1,
		}, true
	}

	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left, p)
	case -1: // p.key < key
		p.right, added = insert(key, p.right, p)
	default:
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}

// restore the height invariant at p after one side grew by one
func rebalance(p *Node) *Node {
	p.fix()
	switch b := p.balance(); {
	case b > 1:
		if p.left.balance() < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case b < -1:
		if p.right.balance() > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}

//      p            l
//     / \          / \
//    l   c  =>    a   p
//   / \              / \
//  a   b            b   c
func rotateRight(p *Node) *Node {
	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l
	p.fix()
	l.fix()
	return l
}

//    p                r
//   / \              / \
//  a   r      =>    p   c
//     / \          / \
//    b   c        a   b
func rotateLeft(p *Node) *Node {
	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r
	p.fix()
	r.fix()
	return r
}
