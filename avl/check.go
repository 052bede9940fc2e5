// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers, heights and balance for consistency
func (tree *Tree) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		fmt.Printf("root has parent: %v\n", tree.root.up.key)
		return false
	}
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v  bad parent pointer\n", p.key)
		return false
	}
	if !checkup(p.left, p) || !checkup(p.right, p) {
		return false
	}
	h := p.height
	p.fix()
	if h != p.height {
		fmt.Printf("fail at node: %v  height: %d  expected: %d\n", p.key, h, p.height)
		return false
	}
	if b := p.balance(); b < -1 || b > 1 {
		fmt.Printf("fail at node: %v  unbalanced: %d\n", p.key, b)
		return false
	}
	return true
}
