// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// InternalError marks a broken invariant inside the partitioner,
// e.g. a transaction that bypassed the key registry.  These abort the
// partitioning call and must never be treated as bad input.
package fault
