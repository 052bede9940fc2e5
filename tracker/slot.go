// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tracker

import (
	"fmt"
)

// Slot - where a transaction was scheduled, ordered by round then
// shard then original index
type Slot struct {
	Round int
	Shard int
	Index int
}

// CellStart - the lowest possible slot of a round/shard cell
func CellStart(round int, shard int) Slot {
	return Slot{Round: round, Shard: shard, Index: 0}
}

// Compare - for avl ordering
func (s Slot) Compare(x interface{}) int {
	o := x.(Slot)
	switch {
	case s.Round < o.Round:
		return -1
	case s.Round > o.Round:
		return +1
	case s.Shard < o.Shard:
		return -1
	case s.Shard > o.Shard:
		return +1
	case s.Index < o.Index:
		return -1
	case s.Index > o.Index:
		return +1
	}
	return 0
}

func (s Slot) String() string {
	return fmt.Sprintf("r%d/s%d/t%d", s.Round, s.Shard, s.Index)
}
