// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/tracker"
	"github.com/bitmark-inc/partitioner/transaction"
)

// state of a single Partition call
type session struct {
	p         *Partitioner
	txns      []*transaction.Analyzed
	numShards int
	registry  *registry

	// first original index of each shard's initial range
	starts []int
}

// a transaction waiting in a shard
type item struct {
	index int
	shard int
}

// a shard's list of original indices, appended concurrently
type cellList struct {
	sync.Mutex
	indices []int
}

func (c *cellList) add(index int) {
	c.Lock()
	c.indices = append(c.indices, index)
	c.Unlock()
}

// sorted copies of the lists, empty lists are non-nil
func sortedCells(lists []cellList) [][]int {
	cells := make([][]int, len(lists))
	for i := range lists {
		cell := append([]int{}, lists[i].indices...)
		sort.Ints(cell)
		cells[i] = cell
	}
	return cells
}

func flatten(cells [][]int) []item {
	items := make([]item, 0, count(cells))
	for shard, cell := range cells {
		for _, index := range cell {
			items = append(items, item{index: index, shard: shard})
		}
	}
	return items
}

func count(cells [][]int) int {
	n := 0
	for _, cell := range cells {
		n += len(cell)
	}
	return n
}

func (s *session) sender(txn *transaction.Analyzed) (int, error) {
	id, ok := txn.SenderID()
	if !ok {
		return 0, fault.ErrMissingSenderId
	}
	if id >= s.registry.numSenders {
		return 0, fault.ErrSenderOutOfRange
	}
	return id, nil
}

func (s *session) tracker(loc *transaction.Location) (*tracker.Tracker, error) {
	id, ok := loc.ID()
	if !ok {
		return nil, fault.ErrLocationNotRegistered
	}
	if id >= len(s.registry.trackers) {
		return nil, fault.ErrLocationOutOfRange
	}
	return s.registry.trackers[id], nil
}

// record the slot in the tracker of every touched location
func (s *session) promote(slot tracker.Slot) error {
	return s.txns[slot.Index].Touches(func(loc *transaction.Location, _ bool) error {
		t, err := s.tracker(loc)
		if nil != err {
			return err
		}
		t.Promote(slot)
		return nil
	})
}
