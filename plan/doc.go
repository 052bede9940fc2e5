// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package plan - the output of partitioning a block
//
// A plan holds, for every executor shard, one sub-block per round.
// Each transaction in a sub-block carries its dense execution index
// and the cross-shard edges the executor must respect:
//
//   required  - this transaction must run after the peer's write is visible
//   dependent - the peer must wait for this transaction
//
// Pack produces a canonical binary form that does not include the
// transaction payloads; its SHA3-256 digest identifies a plan so that
// replaying nodes can confirm they computed the same schedule.
package plan
