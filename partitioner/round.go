// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"sort"

	"github.com/bitmark-inc/partitioner/counter"
	"github.com/bitmark-inc/partitioner/tracker"
	"github.com/bitmark-inc/partitioner/transaction"
)

// run one discarding round over the per-shard candidates
//
// returns the accepted and discarded original indices per shard,
// each sorted ascending
func (s *session) discardingRound(round int, candidates [][]int) ([][]int, [][]int, error) {
	numShards := len(candidates)
	discarded := make([]cellList, numShards)
	potentiallyAccepted := make([]cellList, numShards)
	accepted := make([]cellList, numShards)
	minDiscarded := counter.NewMinimums(s.registry.numSenders)

	// pass 1: conflicts against unscheduled writers upstream of the shard
	items := flatten(candidates)
	err := s.p.parallel(len(items), func(i int) error {
		it := items[i]
		txn := s.txns[it.index]
		sender, err := s.sender(txn)
		if nil != err {
			return err
		}

		conflict := false
		err = txn.Touches(func(loc *transaction.Location, _ bool) error {
			if conflict {
				return nil
			}
			t, err := s.tracker(loc)
			if nil != err {
				return err
			}
			conflict = t.HasPendingWriteInRange(s.starts[t.AnchorShard()], s.starts[it.shard])
			return nil
		})
		if nil != err {
			return err
		}

		if conflict {
			minDiscarded[sender].Lower(uint64(it.index))
			discarded[it.shard].add(it.index)
		} else {
			potentiallyAccepted[it.shard].add(it.index)
		}
		return nil
	})
	if nil != err {
		return nil, nil, err
	}

	// pass 2: every sender minimum is final, keep only transactions
	// ahead of their sender's first discard
	survivors := flatten(sortedCells(potentiallyAccepted))
	err = s.p.parallel(len(survivors), func(i int) error {
		it := survivors[i]
		sender, err := s.sender(s.txns[it.index])
		if nil != err {
			return err
		}

		if uint64(it.index) >= minDiscarded[sender].Uint64() {
			discarded[it.shard].add(it.index)
			return nil
		}

		err = s.promote(tracker.Slot{Round: round, Shard: it.shard, Index: it.index})
		if nil != err {
			return err
		}
		accepted[it.shard].add(it.index)
		return nil
	})
	if nil != err {
		return nil, nil, err
	}

	return sortedCells(accepted), sortedCells(discarded), nil
}

// place everything left in the last shard of the round
func (s *session) catchAllRound(round int, remaining [][]int) ([][]int, error) {
	last := s.numShards - 1
	cells := make([][]int, s.numShards)
	for shard := range cells {
		cells[shard] = []int{}
	}

	items := flatten(remaining)
	err := s.p.parallel(len(items), func(i int) error {
		return s.promote(tracker.Slot{Round: round, Shard: last, Index: items[i].index})
	})
	if nil != err {
		return nil, err
	}

	indices := make([]int, len(items))
	for i, it := range items {
		indices[i] = it.index
	}
	sort.Ints(indices)
	cells[last] = indices
	return cells, nil
}
