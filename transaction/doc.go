// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - transactions analysed for partitioning
//
// An analysed transaction carries an opaque payload, the identity of
// its sender and the storage locations it writes and reads.  The
// partitioner's key registry annotates each transaction in place with
// dense session ids for the sender and for every location; the ids
// are only meaningful within one partitioning call.
package transaction
