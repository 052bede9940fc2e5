// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plan

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/util"
)

// version of the packed form
const packVersion = 1

// largest integer accepted when unpacking
const maximumValue = 1<<31 - 1

// DigestSize - bytes in a plan digest
const DigestSize = 32

// Digest - SHA3-256 of the packed plan
type Digest [DigestSize]byte

// Packed - a plan in binary form
type Packed []byte

// Pack - canonical binary form
//
// all integers are varint64 encoded:
//
//   version shards rounds
//   per shard:     shard count(sub-blocks)
//   per sub-block: round shard start count(transactions)
//   per tx:        original index count(required) edges… count(dependent) edges…
//   per edge:      index shard round count(keys) (length bytes)…
func (p *Plan) Pack() Packed {
	buffer := make([]byte, 0, 64+16*p.Count())
	buffer = appendInt(buffer, packVersion)
	buffer = appendInt(buffer, p.NumShards)
	buffer = appendInt(buffer, p.NumRounds)
	for _, s := range p.Shards {
		buffer = appendInt(buffer, s.Shard)
		buffer = appendInt(buffer, len(s.SubBlocks))
		for _, b := range s.SubBlocks {
			buffer = appendInt(buffer, b.Round)
			buffer = appendInt(buffer, b.Shard)
			buffer = appendInt(buffer, b.StartIndex)
			buffer = appendInt(buffer, len(b.Transactions))
			for _, tx := range b.Transactions {
				buffer = appendInt(buffer, tx.Original)
				buffer = appendInt(buffer, tx.Index)
				buffer = appendEdges(buffer, tx.Dependencies.Required)
				buffer = appendEdges(buffer, tx.Dependencies.Dependent)
			}
		}
	}
	return buffer
}

// Digest - identify a plan
func (p *Plan) Digest() Digest {
	return p.Pack().Digest()
}

// Digest - SHA3-256 of the packed bytes
func (record Packed) Digest() Digest {
	return Digest(sha3.Sum256(record))
}

func appendInt(buffer []byte, n int) []byte {
	return util.AppendVarint64(buffer, uint64(n))
}

func appendEdges(buffer []byte, edges []Edge) []byte {
	buffer = appendInt(buffer, len(edges))
	for _, e := range edges {
		buffer = appendInt(buffer, e.Peer.Index)
		buffer = appendInt(buffer, e.Peer.Shard)
		buffer = appendInt(buffer, e.Peer.Round)
		buffer = appendInt(buffer, len(e.Keys))
		for _, k := range e.Keys {
			buffer = appendInt(buffer, len(k))
			buffer = append(buffer, k...)
		}
	}
	return buffer
}

// Unpack - restore a plan, transactions have no payload
func (record Packed) Unpack() (*Plan, error) {
	u := &unpacker{buffer: record}

	if version := u.int(); packVersion != version {
		if nil != u.err {
			return nil, u.err
		}
		return nil, fault.ErrInvalidPlanVersion
	}

	p := &Plan{
		NumShards: u.count(),
		NumRounds: u.count(),
	}
	if nil != u.err {
		return nil, u.err
	}

	p.Shards = make([]ShardBlocks, 0, p.NumShards)
	for i := 0; i < p.NumShards && nil == u.err; i += 1 {
		s := ShardBlocks{Shard: u.int()}
		n := u.count()
		if nil == u.err && (i != s.Shard || p.NumRounds != n) {
			return nil, fault.ErrInvalidPlanShape
		}
		s.SubBlocks = make([]SubBlock, 0, n)
		for j := 0; j < n && nil == u.err; j += 1 {
			b := SubBlock{
				Round:      u.int(),
				Shard:      u.int(),
				StartIndex: u.int(),
			}
			if nil == u.err && (j != b.Round || s.Shard != b.Shard) {
				return nil, fault.ErrInvalidPlanShape
			}
			m := u.count()
			b.Transactions = make([]Transaction, 0, m)
			for k := 0; k < m && nil == u.err; k += 1 {
				tx := Transaction{
					Original: u.int(),
					Index:    u.int(),
				}
				tx.Dependencies.Required = u.edges()
				tx.Dependencies.Dependent = u.edges()
				b.Transactions = append(b.Transactions, tx)
			}
			s.SubBlocks = append(s.SubBlocks, b)
		}
		p.Shards = append(p.Shards, s)
	}

	if nil != u.err {
		return nil, u.err
	}
	if len(u.buffer) != 0 {
		return nil, fault.ErrTrailingPlanData
	}
	return p, nil
}

type unpacker struct {
	buffer []byte
	err    error
}

func (u *unpacker) int() int {
	if nil != u.err {
		return 0
	}
	value, n := util.ClippedVarint64(u.buffer, 0, maximumValue)
	if 0 == n {
		if _, n := util.FromVarint64(u.buffer); 0 == n {
			u.err = fault.ErrTruncatedPlan
		} else {
			u.err = fault.ErrPlanValueOutOfRange
		}
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// a count can never exceed the remaining bytes
func (u *unpacker) count() int {
	n := u.int()
	if n > len(u.buffer) {
		u.err = fault.ErrTruncatedPlan
		return 0
	}
	return n
}

func (u *unpacker) bytes() []byte {
	n := u.count()
	if nil != u.err {
		return nil
	}
	b := make([]byte, n)
	copy(b, u.buffer[:n])
	u.buffer = u.buffer[n:]
	return b
}

func (u *unpacker) edges() []Edge {
	n := u.count()
	if 0 == n {
		return nil
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n && nil == u.err; i += 1 {
		e := Edge{
			Peer: ShardedIndex{
				Index: u.int(),
				Shard: u.int(),
				Round: u.int(),
			},
		}
		k := u.count()
		e.Keys = make([][]byte, 0, k)
		for j := 0; j < k && nil == u.err; j += 1 {
			e.Keys = append(e.Keys, u.bytes())
		}
		edges = append(edges, e)
	}
	return edges
}
