// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tracker

// binary indexed tree of 0/1 flags, one per writer position
type pending []int

func newPending(n int) pending {
	p := make(pending, n+1)
	for i := 1; i <= n; i += 1 {
		p[i] += 1
		if j := i + i&-i; j <= n {
			p[j] += p[i]
		}
	}
	return p
}

// count of set flags in positions [0, position)
func (p pending) prefix(position int) int {
	total := 0
	for i := position; i > 0; i -= i & -i {
		total += p[i]
	}
	return total
}

// clear the flag at a position, the caller ensures it was set
func (p pending) clear(position int) {
	for i := position + 1; i < len(p); i += i & -i {
		p[i] -= 1
	}
}
