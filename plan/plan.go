// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plan

import (
	"fmt"

	"github.com/bitmark-inc/partitioner/transaction"
)

// ShardedIndex - the dense execution index of a transaction and the
// cell it was scheduled in
type ShardedIndex struct {
	Index int `json:"index"`
	Shard int `json:"shard"`
	Round int `json:"round"`
}

// Edge - an ordering constraint to another transaction caused by the
// listed storage keys
type Edge struct {
	Peer ShardedIndex `json:"peer"`
	Keys [][]byte     `json:"keys"`
}

// Dependencies - cross shard edges of a transaction
type Dependencies struct {
	Required  []Edge `json:"required"`
	Dependent []Edge `json:"dependent"`
}

// Transaction - a scheduled transaction
type Transaction struct {
	Original     int                   `json:"original"`
	Index        int                   `json:"index"`
	Txn          *transaction.Analyzed `json:"-"`
	Dependencies Dependencies          `json:"dependencies"`
}

// SubBlock - the transactions of one round/shard cell in execution order
type SubBlock struct {
	Round        int           `json:"round"`
	Shard        int           `json:"shard"`
	StartIndex   int           `json:"startIndex"`
	Transactions []Transaction `json:"transactions"`
}

// ShardBlocks - the sub-blocks of one shard, one per round
type ShardBlocks struct {
	Shard     int        `json:"shard"`
	SubBlocks []SubBlock `json:"subBlocks"`
}

// Plan - a partitioned block
type Plan struct {
	NumShards int           `json:"numShards"`
	NumRounds int           `json:"numRounds"`
	Shards    []ShardBlocks `json:"shards"`
}

// Count - total number of transactions
func (p *Plan) Count() int {
	n := 0
	for _, s := range p.Shards {
		for _, b := range s.SubBlocks {
			n += len(b.Transactions)
		}
	}
	return n
}

// Grid - original indices as [round][shard] in execution order
func (p *Plan) Grid() [][][]int {
	grid := make([][][]int, p.NumRounds)
	for round := range grid {
		grid[round] = make([][]int, p.NumShards)
		for shard := range grid[round] {
			grid[round][shard] = []int{}
		}
	}
	for _, s := range p.Shards {
		for _, b := range s.SubBlocks {
			cell := make([]int, len(b.Transactions))
			for i, tx := range b.Transactions {
				cell[i] = tx.Original
			}
			grid[b.Round][b.Shard] = cell
		}
	}
	return grid
}

// SubBlock - the cell of a round and shard
func (p *Plan) SubBlock(round int, shard int) *SubBlock {
	if shard < 0 || shard >= len(p.Shards) {
		return nil
	}
	blocks := p.Shards[shard].SubBlocks
	if round < 0 || round >= len(blocks) {
		return nil
	}
	return &blocks[round]
}

// Locations - map from original index to scheduled position
func (p *Plan) Locations() map[int]ShardedIndex {
	locations := make(map[int]ShardedIndex, p.Count())
	for _, s := range p.Shards {
		for _, b := range s.SubBlocks {
			for _, tx := range b.Transactions {
				locations[tx.Original] = ShardedIndex{
					Index: tx.Index,
					Shard: b.Shard,
					Round: b.Round,
				}
			}
		}
	}
	return locations
}

// Before - true if a is scheduled strictly before b in round/shard order
func (a ShardedIndex) Before(b ShardedIndex) bool {
	if a.Round != b.Round {
		return a.Round < b.Round
	}
	return a.Shard < b.Shard
}

func (a ShardedIndex) String() string {
	return fmt.Sprintf("%d@r%d/s%d", a.Index, a.Round, a.Shard)
}
