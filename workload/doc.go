// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - seeded generator of synthetic transfer blocks
//
// every transfer writes the sender and receiver accounts and reads a
// shared configuration key, a fraction of transfers can be steered to
// a small set of hot accounts to create contention
package workload
