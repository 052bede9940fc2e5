// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk plan store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. block number = big endian uint64 (8 bytes)
// 4. digest       = SHA3-256 of the packed plan (32 bytes)
//
// Plans:
//
//   P ++ block number          - partitioned block
//                                data: packed plan
//   D ++ block number          - digest of the first plan stored for the block
//                                data: digest
//
// Testing:
//   Z ++ key                   - testing data
package storage
