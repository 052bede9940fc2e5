// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/plan"
	"github.com/bitmark-inc/partitioner/storage"
)

func singleCellPlan(original int) *plan.Plan {
	return &plan.Plan{
		NumShards: 1,
		NumRounds: 1,
		Shards: []plan.ShardBlocks{
			{
				Shard: 0,
				SubBlocks: []plan.SubBlock{
					{
						Round:      0,
						Shard:      0,
						StartIndex: 0,
						Transactions: []plan.Transaction{
							{Original: original, Index: 0},
						},
					},
				},
			},
		},
	}
}

func TestStorePlan(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := singleCellPlan(0)
	digest, err := storage.StorePlan(12, p)
	require.NoError(t, err, "store")
	assert.Equal(t, p.Digest(), digest, "digest")

	// identical replay
	digest, err = storage.StorePlan(12, singleCellPlan(0))
	require.NoError(t, err, "replay")
	assert.Equal(t, p.Digest(), digest, "replay digest")

	// a different plan for the same block
	_, err = storage.StorePlan(12, singleCellPlan(1))
	assert.Equal(t, fault.ErrPlanMismatch, err, "mismatch")
	assert.True(t, fault.IsErrRecord(err), "classification")

	loaded, err := storage.LoadPlan(12)
	require.NoError(t, err, "load")
	assert.Equal(t, p.Grid(), loaded.Grid(), "grid")

	_, err = storage.LoadPlan(13)
	assert.Equal(t, fault.ErrPlanNotFound, err, "missing plan")
}

func TestDigests(t *testing.T) {
	setup(t)
	defer teardown(t)

	blocks := []uint64{300, 2, 256}
	for i, n := range blocks {
		_, err := storage.StorePlan(n, singleCellPlan(i))
		require.NoError(t, err, "store: %d", n)
	}

	numbers := []uint64{}
	digests := map[uint64]plan.Digest{}
	err := storage.Digests(func(blockNumber uint64, digest plan.Digest) error {
		numbers = append(numbers, blockNumber)
		digests[blockNumber] = digest
		return nil
	})
	require.NoError(t, err, "digests")

	assert.Equal(t, []uint64{2, 256, 300}, numbers, "block order")
	assert.Equal(t, singleCellPlan(1).Digest(), digests[2], "digest of block 2")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.StorePlan(1, singleCellPlan(0))
	assert.Equal(t, fault.ErrNotInitialised, err, "store")

	_, err = storage.LoadPlan(1)
	assert.Equal(t, fault.ErrNotInitialised, err, "load")

	_, _, _, err = storage.LatestPlan()
	assert.Equal(t, fault.ErrNotInitialised, err, "latest")

	err = storage.DeletePlan(1)
	assert.Equal(t, fault.ErrNotInitialised, err, "delete")

	assert.False(t, storage.HasPlan(1), "has")
}

func TestHasAndLatestPlan(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, _, found, err := storage.LatestPlan()
	require.NoError(t, err, "empty latest")
	assert.False(t, found, "latest in empty database")

	for i, n := range []uint64{40, 3, 17} {
		_, err := storage.StorePlan(n, singleCellPlan(i))
		require.NoError(t, err, "store: %d", n)
	}

	assert.True(t, storage.HasPlan(3), "has block 3")
	assert.False(t, storage.HasPlan(4), "has block 4")

	blockNumber, digest, found, err := storage.LatestPlan()
	require.NoError(t, err, "latest")
	assert.True(t, found, "latest found")
	assert.Equal(t, uint64(40), blockNumber, "latest block")
	assert.Equal(t, singleCellPlan(0).Digest(), digest, "latest digest")
}

func TestDeletePlan(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := storage.StorePlan(5, singleCellPlan(0))
	require.NoError(t, err, "store")

	err = storage.DeletePlan(5)
	require.NoError(t, err, "delete")
	assert.False(t, storage.HasPlan(5), "digest kept")
	_, err = storage.LoadPlan(5)
	assert.Equal(t, fault.ErrPlanNotFound, err, "plan kept")

	err = storage.DeletePlan(5)
	assert.Equal(t, fault.ErrPlanNotFound, err, "second delete")

	// a different plan may now be recorded
	digest, err := storage.StorePlan(5, singleCellPlan(1))
	require.NoError(t, err, "store after delete")
	assert.Equal(t, singleCellPlan(1).Digest(), digest, "new digest")
}

func TestCorruptPlanRecord(t *testing.T) {
	setup(t)
	defer teardown(t)

	corrupt := &plan.Plan{
		NumShards: 1,
		NumRounds: 1,
		Shards: []plan.ShardBlocks{
			{Shard: 0, SubBlocks: []plan.SubBlock{{Round: 5}}},
		},
	}
	storage.Pool.Plans.Put(storage.BlockKey(9), corrupt.Pack())

	_, err := storage.LoadPlan(9)
	assert.Equal(t, fault.ErrInvalidPlanShape, err, "corrupt record")
}
