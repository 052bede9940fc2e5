// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/partitioner/tracker"
	"github.com/bitmark-inc/partitioner/transaction"
)

// dense ids for the senders and locations of one block
type registry struct {
	numSenders int
	keys       [][]byte
	trackers   []*tracker.Tracker
}

// AnchorShard - the conflict reference shard of a storage key
func AnchorShard(key []byte, numShards int) int {
	digest := sha3.Sum256(key)
	return int(binary.BigEndian.Uint64(digest[:8]) % uint64(numShards))
}

// assign ids in first sight order and seed one tracker per location
//
// every transaction is annotated in place with its sender id and
// the id of each location it touches
func (p *Partitioner) register(txns []*transaction.Analyzed, numShards int) (*registry, error) {
	senders := make(map[string]int)
	locations := make(map[string]int)
	r := &registry{}
	candidates := [][]tracker.Candidate{}

	for index, txn := range txns {
		sender, ok := senders[string(txn.Sender)]
		if !ok {
			sender = len(senders)
			senders[string(txn.Sender)] = sender
		}
		txn.SetSenderID(sender)

		_ = txn.Touches(func(loc *transaction.Location, isWrite bool) error {
			id, ok := locations[string(loc.Key)]
			if !ok {
				id = len(r.keys)
				locations[string(loc.Key)] = id
				r.keys = append(r.keys, loc.Key)
				candidates = append(candidates, nil)
			}
			loc.SetID(id)
			candidates[id] = append(candidates[id], tracker.Candidate{
				Index:   index,
				IsWrite: isWrite,
			})
			return nil
		})
	}
	r.numSenders = len(senders)

	r.trackers = make([]*tracker.Tracker, len(r.keys))
	err := p.parallel(len(r.keys), func(id int) error {
		r.trackers[id] = tracker.New(AnchorShard(r.keys[id], numShards), candidates[id])
		return nil
	})
	if nil != err {
		return nil, err
	}
	return r, nil
}
