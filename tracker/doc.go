// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tracker - per storage location conflict tracking
//
// One Tracker exists for each distinct storage location of a block.
// It is seeded with the location's anchor shard and the candidate
// transactions touching it, then collects the slots of transactions
// as they are promoted into the partition grid.
//
// Every exported method locks only the tracker it is called on so
// transactions touching different locations never contend.
package tracker
