// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tracker

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bitmark-inc/partitioner/avl"
)

// Candidate - a transaction touching the location
type Candidate struct {
	Index   int
	IsWrite bool
}

// Tracker - conflict state of a single storage location
type Tracker struct {
	sync.RWMutex

	anchorShard int
	candidates  []Candidate

	// distinct writer indices in ascending order
	writers []int

	// writers not yet promoted, by position in writers
	unscheduled pending
	promoted    []bool

	promotedWriters *avl.Tree
	promotedTouches *avl.Tree
}

// New - create a tracker from the candidates in original index order
func New(anchorShard int, candidates []Candidate) *Tracker {
	writers := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if !c.IsWrite {
			continue
		}
		if n := len(writers); n > 0 && writers[n-1] == c.Index {
			continue
		}
		writers = append(writers, c.Index)
	}

	return &Tracker{
		anchorShard:     anchorShard,
		candidates:      candidates,
		writers:         writers,
		unscheduled:     newPending(len(writers)),
		promoted:        make([]bool, len(writers)),
		promotedWriters: avl.New(),
		promotedTouches: avl.New(),
	}
}

// AnchorShard - reference shard for conflict detection
func (t *Tracker) AnchorShard() int {
	return t.anchorShard
}

// IsWriter - true if the transaction writes this location
func (t *Tracker) IsWriter(index int) bool {
	_, ok := t.writerPosition(index)
	return ok
}

func (t *Tracker) writerPosition(index int) (int, bool) {
	i := sort.SearchInts(t.writers, index)
	return i, i < len(t.writers) && t.writers[i] == index
}

// HasPendingWriteInRange - true if an unscheduled writer has an
// original index in [start, end)
//
// if start > end the range wraps around the end of the block:
// [start, ∞) ∪ [0, end)
func (t *Tracker) HasPendingWriteInRange(start int, end int) bool {
	t.RLock()
	defer t.RUnlock()

	if start <= end {
		return t.countBelow(end)-t.countBelow(start) > 0
	}
	return t.countBelow(end) > 0 || t.unscheduledTotal()-t.countBelow(start) > 0
}

// number of unscheduled writers with index < limit
func (t *Tracker) countBelow(limit int) int {
	return t.unscheduled.prefix(sort.SearchInts(t.writers, limit))
}

func (t *Tracker) unscheduledTotal() int {
	return t.unscheduled.prefix(len(t.writers))
}

// Promote - record the final slot of a transaction touching this
// location
func (t *Tracker) Promote(slot Slot) {
	t.Lock()
	defer t.Unlock()

	t.promotedTouches.Insert(slot)
	position, ok := t.writerPosition(slot.Index)
	if !ok {
		return
	}
	t.promotedWriters.Insert(slot)
	if !t.promoted[position] {
		t.promoted[position] = true
		t.unscheduled.clear(position)
	}
}

// LastWriterBefore - the greatest promoted writer slot strictly
// before slot
func (t *Tracker) LastWriterBefore(slot Slot) (Slot, bool) {
	t.RLock()
	defer t.RUnlock()

	node := t.promotedWriters.Below(slot)
	if nil == node {
		return Slot{}, false
	}
	return node.Key().(Slot), true
}

// HasWriterIn - true if a promoted writer lies in [from, to)
func (t *Tracker) HasWriterIn(from Slot, to Slot) bool {
	t.RLock()
	defer t.RUnlock()

	node := t.promotedWriters.AtOrAbove(from)
	return nil != node && -1 == node.Key().Compare(to)
}

// Followers - call f for each promoted touch at or after from, in
// slot order, until f returns false
func (t *Tracker) Followers(from Slot, f func(Slot) bool) {
	t.RLock()
	defer t.RUnlock()

	for node := t.promotedTouches.AtOrAbove(from); nil != node; node = node.Next() {
		if !f(node.Key().(Slot)) {
			return
		}
	}
}

// Summary - brief description for trace logging
func (t *Tracker) Summary() string {
	t.RLock()
	defer t.RUnlock()
	return fmt.Sprintf("anchor: %d  candidates: %d  writers: %d  unscheduled writers: %d  promoted writers: %d  promoted touches: %d",
		t.anchorShard,
		len(t.candidates),
		len(t.writers),
		t.unscheduledTotal(),
		t.promotedWriters.Count(),
		t.promotedTouches.Count(),
	)
}
