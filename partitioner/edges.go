// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"sort"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/plan"
	"github.com/bitmark-inc/partitioner/tracker"
	"github.com/bitmark-inc/partitioner/transaction"
)

// edges to distinct peers, keys deduplicated by location
type edgeSet struct {
	peers map[int]*edgeEntry
}

type edgeEntry struct {
	peer      plan.ShardedIndex
	locations map[int]struct{}
	keys      [][]byte
}

func (e *edgeSet) add(peer plan.ShardedIndex, location int, key []byte) {
	if nil == e.peers {
		e.peers = make(map[int]*edgeEntry)
	}
	entry, ok := e.peers[peer.Index]
	if !ok {
		entry = &edgeEntry{
			peer:      peer,
			locations: make(map[int]struct{}),
		}
		e.peers[peer.Index] = entry
	}
	if _, ok := entry.locations[location]; ok {
		return
	}
	entry.locations[location] = struct{}{}
	entry.keys = append(entry.keys, key)
}

// edges ordered by peer index, nil if there are none
func (e *edgeSet) edges() []plan.Edge {
	if 0 == len(e.peers) {
		return nil
	}
	edges := make([]plan.Edge, 0, len(e.peers))
	for _, entry := range e.peers {
		edges = append(edges, plan.Edge{
			Peer: entry.peer,
			Keys: entry.keys,
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Peer.Index < edges[j].Peer.Index
	})
	return edges
}

// dense execution indices of a complete schedule
type layout struct {
	numRounds int
	newIndex  []int
	start     [][]int
}

// number every transaction round-major, shard-minor, in cell order
func (s *session) layout(grid [][][]int) (*layout, error) {
	l := &layout{
		numRounds: len(grid),
		newIndex:  make([]int, len(s.txns)),
		start:     make([][]int, len(grid)),
	}
	scheduled := make([]bool, len(s.txns))

	next := 0
	for round, row := range grid {
		l.start[round] = make([]int, s.numShards)
		for shard, cell := range row {
			l.start[round][shard] = next
			for _, index := range cell {
				if scheduled[index] {
					return nil, fault.ErrTransactionScheduledTwice
				}
				scheduled[index] = true
				l.newIndex[index] = next
				next += 1
			}
		}
	}
	if next != len(s.txns) {
		return nil, fault.ErrTransactionNotScheduled
	}
	return l, nil
}

func (l *layout) shardedIndex(slot tracker.Slot) plan.ShardedIndex {
	return plan.ShardedIndex{
		Index: l.newIndex[slot.Index],
		Shard: slot.Shard,
		Round: slot.Round,
	}
}

// cross shard edges of the transaction scheduled at slot
func (s *session) dependencies(l *layout, slot tracker.Slot) (plan.Dependencies, error) {
	required := edgeSet{}
	dependent := edgeSet{}

	cellStart := tracker.CellStart(slot.Round, slot.Shard)
	nextCell := tracker.CellStart(slot.Round, slot.Shard+1)
	afterSelf := tracker.Slot{Round: slot.Round, Shard: slot.Shard, Index: slot.Index + 1}

	err := s.txns[slot.Index].Touches(func(loc *transaction.Location, isWrite bool) error {
		t, err := s.tracker(loc)
		if nil != err {
			return err
		}
		id, _ := loc.ID()

		if writer, ok := t.LastWriterBefore(cellStart); ok {
			required.add(l.shardedIndex(writer), id, loc.Key)
		}

		// only the last writer of the location in this cell feeds later cells
		if !isWrite || t.HasWriterIn(afterSelf, nextCell) {
			return nil
		}

		end := tracker.CellStart(l.numRounds, 0)
		t.Followers(nextCell, func(follower tracker.Slot) bool {
			if -1 != follower.Compare(end) {
				return false
			}
			dependent.add(l.shardedIndex(follower), id, loc.Key)
			if t.IsWriter(follower.Index) {
				end = tracker.CellStart(follower.Round, follower.Shard+1)
			}
			return true
		})
		return nil
	})
	if nil != err {
		return plan.Dependencies{}, err
	}

	return plan.Dependencies{
		Required:  required.edges(),
		Dependent: dependent.edges(),
	}, nil
}

// compute edges for every cell and assemble the per shard sub-blocks
func (s *session) assemble(grid [][][]int) (*plan.Plan, error) {
	l, err := s.layout(grid)
	if nil != err {
		return nil, err
	}

	p := &plan.Plan{
		NumShards: s.numShards,
		NumRounds: l.numRounds,
		Shards:    make([]plan.ShardBlocks, s.numShards),
	}
	for shard := range p.Shards {
		p.Shards[shard] = plan.ShardBlocks{
			Shard:     shard,
			SubBlocks: make([]plan.SubBlock, l.numRounds),
		}
	}

	err = s.p.parallel(l.numRounds*s.numShards, func(c int) error {
		round, shard := c/s.numShards, c%s.numShards
		cell := grid[round][shard]

		transactions := make([]plan.Transaction, len(cell))
		for i, index := range cell {
			slot := tracker.Slot{Round: round, Shard: shard, Index: index}
			deps, err := s.dependencies(l, slot)
			if nil != err {
				return err
			}
			transactions[i] = plan.Transaction{
				Original:     index,
				Index:        l.newIndex[index],
				Txn:          s.txns[index],
				Dependencies: deps,
			}
		}

		p.Shards[shard].SubBlocks[round] = plan.SubBlock{
			Round:        round,
			Shard:        shard,
			StartIndex:   l.start[round][shard],
			Transactions: transactions,
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}
