// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/plan"
	"github.com/bitmark-inc/partitioner/util"
)

// two shards two rounds:
//   r0/s0: 0 1    r0/s1: 2
//   r1/s0: -      r1/s1: 3
func samplePlan() *plan.Plan {
	key := []byte("balance/alice")
	return &plan.Plan{
		NumShards: 2,
		NumRounds: 2,
		Shards: []plan.ShardBlocks{
			{
				Shard: 0,
				SubBlocks: []plan.SubBlock{
					{
						Round: 0, Shard: 0, StartIndex: 0,
						Transactions: []plan.Transaction{
							{Original: 0, Index: 0},
							{
								Original: 1, Index: 1,
								Dependencies: plan.Dependencies{
									Dependent: []plan.Edge{
										{Peer: plan.ShardedIndex{Index: 3, Shard: 1, Round: 1}, Keys: [][]byte{key}},
									},
								},
							},
						},
					},
					{Round: 1, Shard: 0, StartIndex: 3, Transactions: []plan.Transaction{}},
				},
			},
			{
				Shard: 1,
				SubBlocks: []plan.SubBlock{
					{
						Round: 0, Shard: 1, StartIndex: 2,
						Transactions: []plan.Transaction{
							{Original: 2, Index: 2},
						},
					},
					{
						Round: 1, Shard: 1, StartIndex: 3,
						Transactions: []plan.Transaction{
							{
								Original: 3, Index: 3,
								Dependencies: plan.Dependencies{
									Required: []plan.Edge{
										{Peer: plan.ShardedIndex{Index: 1, Shard: 0, Round: 0}, Keys: [][]byte{key}},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestGrid(t *testing.T) {
	p := samplePlan()
	assert.Equal(t, 4, p.Count(), "count")
	assert.Equal(t, [][][]int{
		{{0, 1}, {2}},
		{{}, {3}},
	}, p.Grid(), "grid")

	locations := p.Locations()
	assert.Equal(t, plan.ShardedIndex{Index: 3, Shard: 1, Round: 1}, locations[3], "location of 3")
	assert.Equal(t, 4, len(locations), "location count")

	b := p.SubBlock(1, 1)
	require.NotNil(t, b, "sub-block r1/s1")
	assert.Equal(t, 3, b.StartIndex, "start index")
	assert.Nil(t, p.SubBlock(2, 0), "round out of range")
	assert.Nil(t, p.SubBlock(0, 2), "shard out of range")
}

func TestShardedIndexOrder(t *testing.T) {
	a := plan.ShardedIndex{Index: 5, Shard: 1, Round: 0}
	b := plan.ShardedIndex{Index: 1, Shard: 0, Round: 1}
	c := plan.ShardedIndex{Index: 6, Shard: 1, Round: 0}
	assert.True(t, a.Before(b), "round order")
	assert.False(t, b.Before(a), "round order reversed")
	assert.False(t, a.Before(c), "same cell is not before")
	assert.Equal(t, "5@r0/s1", a.String(), "string form")
}

func TestPackUnpack(t *testing.T) {
	p := samplePlan()
	packed := p.Pack()

	q, err := packed.Unpack()
	require.NoError(t, err, "unpack")
	assert.Equal(t, p, q, "round trip")
	assert.Equal(t, p.Digest(), q.Digest(), "digest changed by round trip")

	// digest depends on edges
	q.Shards[1].SubBlocks[1].Transactions[0].Dependencies.Required[0].Peer.Index = 0
	assert.NotEqual(t, p.Digest(), q.Digest(), "digest ignores edges")
}

func TestUnpackErrors(t *testing.T) {
	packed := samplePlan().Pack()

	for n := 0; n < len(packed); n += 1 {
		_, err := packed[:n].Unpack()
		assert.True(t, fault.IsErrLength(err), "truncated at %d: %v", n, err)
	}

	_, err := append(append(plan.Packed{}, packed...), 0).Unpack()
	assert.Equal(t, fault.ErrTrailingPlanData, err, "trailing data")

	bad := append(plan.Packed{}, packed...)
	bad[0] = 2
	_, err = bad.Unpack()
	assert.Equal(t, fault.ErrInvalidPlanVersion, err, "version")

	huge := plan.Packed(util.ToVarint64(1))
	huge = append(huge, util.ToVarint64(1<<40)...)
	huge = append(huge, make([]byte, 16)...)
	_, err = huge.Unpack()
	assert.Equal(t, fault.ErrPlanValueOutOfRange, err, "huge shard count")
}

func TestUnpackInvalidShape(t *testing.T) {
	items := []struct {
		title  string
		modify func(p *plan.Plan)
	}{
		{"round beyond header", func(p *plan.Plan) {
			p.NumShards = 1
			p.NumRounds = 1
			p.Shards = []plan.ShardBlocks{{Shard: 0, SubBlocks: []plan.SubBlock{{Round: 5}}}}
		}},
		{"shard out of order", func(p *plan.Plan) {
			p.Shards[0].Shard = 1
		}},
		{"missing sub-block", func(p *plan.Plan) {
			p.Shards[1].SubBlocks = p.Shards[1].SubBlocks[:1]
		}},
		{"extra sub-block", func(p *plan.Plan) {
			p.Shards[0].SubBlocks = append(p.Shards[0].SubBlocks, plan.SubBlock{Round: 2})
		}},
		{"rounds out of order", func(p *plan.Plan) {
			blocks := p.Shards[0].SubBlocks
			blocks[0], blocks[1] = blocks[1], blocks[0]
		}},
		{"sub-block in another shard", func(p *plan.Plan) {
			p.Shards[1].SubBlocks[0].Shard = 0
		}},
	}

	for _, item := range items {
		p := samplePlan()
		item.modify(p)

		q, err := p.Pack().Unpack()
		assert.Equal(t, fault.ErrInvalidPlanShape, err, "%s: error", item.title)
		assert.True(t, fault.IsErrRecord(err), "%s: classification", item.title)
		assert.Nil(t, q, "%s: plan", item.title)
	}

	// a round count larger than the remaining data cannot be honest
	huge := plan.Packed(util.ToVarint64(1))
	huge = append(huge, util.ToVarint64(1)...)
	huge = append(huge, util.ToVarint64(1<<30)...)
	huge = append(huge, make([]byte, 16)...)
	_, err := huge.Unpack()
	assert.Equal(t, fault.ErrTruncatedPlan, err, "huge round count")
}
