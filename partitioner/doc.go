// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package partitioner - assign the transactions of a block to
// (round, shard) execution slots
//
// The block is split into contiguous near-equal ranges, one per shard.
// Each discarding round then keeps a transaction in its shard only if
// no shard upstream of it (counting from the anchor shard of each
// location it touches) holds an unscheduled write to that location,
// and only if no earlier transaction of the same sender was discarded.
// Whatever is left after the last discarding round is placed in a
// single catch-all cell: the last shard of the final round.
//
// Once every transaction has a slot the required and dependent
// cross-shard edges are computed from the per-location promoted sets
// and the result is assembled into per-shard sub-blocks.
//
// For fixed input order, shard count and round limit the result is
// identical regardless of worker count or goroutine scheduling.
package partitioner
