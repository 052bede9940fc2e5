// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/plan"
)

// BlockKey - pool key of a block number
func BlockKey(blockNumber uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, blockNumber)
	return key
}

// StorePlan - record the plan of a block
//
// the first plan stored for a block fixes its digest, storing a
// different plan later is rejected and an identical one is a no-op
func StorePlan(blockNumber uint64, p *plan.Plan) (plan.Digest, error) {
	packed := p.Pack()
	digest := packed.Digest()
	key := BlockKey(blockNumber)

	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database || nil == Pool.Plans {
		return digest, fault.ErrNotInitialised
	}

	recorded, err := poolData.database.Get(Pool.Digests.prefixKey(key), nil)
	if nil == err {
		if string(recorded) != string(digest[:]) {
			return digest, fault.ErrPlanMismatch
		}
		return digest, nil
	}
	if leveldb.ErrNotFound != err {
		return digest, err
	}

	batch := new(leveldb.Batch)
	batch.Put(Pool.Plans.prefixKey(key), packed)
	batch.Put(Pool.Digests.prefixKey(key), digest[:])
	return digest, poolData.database.Write(batch, nil)
}

// LoadPlan - fetch and decode the plan of a block
func LoadPlan(blockNumber uint64) (*plan.Plan, error) {
	if nil == Pool.Plans {
		return nil, fault.ErrNotInitialised
	}
	packed := Pool.Plans.Get(BlockKey(blockNumber))
	if nil == packed {
		return nil, fault.ErrPlanNotFound
	}
	return plan.Packed(packed).Unpack()
}

// HasPlan - true if a plan was recorded for the block
func HasPlan(blockNumber uint64) bool {
	if nil == Pool.Digests {
		return false
	}
	return Pool.Digests.Has(BlockKey(blockNumber))
}

// LatestPlan - the highest recorded block number and its digest,
// false if no plan is recorded
func LatestPlan() (uint64, plan.Digest, bool, error) {
	if nil == Pool.Digests {
		return 0, plan.Digest{}, false, fault.ErrNotInitialised
	}
	last, found := Pool.Digests.LastElement()
	if !found {
		return 0, plan.Digest{}, false, nil
	}
	blockNumber, digest, err := decodeDigest(last.Key, last.Value)
	if nil != err {
		return 0, plan.Digest{}, false, err
	}
	return blockNumber, digest, true, nil
}

// DeletePlan - forget the plan of a block so it can be recorded again
//
// the database must be opened ReadWrite
func DeletePlan(blockNumber uint64) error {
	if nil == Pool.Plans {
		return fault.ErrNotInitialised
	}
	key := BlockKey(blockNumber)
	if !Pool.Digests.Has(key) {
		return fault.ErrPlanNotFound
	}
	Pool.Digests.Delete(key)
	Pool.Plans.Delete(key)
	return nil
}

// Digests - call f for every recorded block digest in block order
func Digests(f func(blockNumber uint64, digest plan.Digest) error) error {
	if nil == Pool.Digests {
		return fault.ErrNotInitialised
	}
	return Pool.Digests.Map(func(key []byte, value []byte) error {
		blockNumber, digest, err := decodeDigest(key, value)
		if nil != err {
			return err
		}
		return f(blockNumber, digest)
	})
}

func decodeDigest(key []byte, value []byte) (uint64, plan.Digest, error) {
	var digest plan.Digest
	if 8 != len(key) {
		return 0, digest, fault.ErrBlockNumberOutOfRange
	}
	if plan.DigestSize != len(value) {
		return 0, digest, fault.ErrTruncatedPlan
	}
	copy(digest[:], value)
	return binary.BigEndian.Uint64(key), digest, nil
}
