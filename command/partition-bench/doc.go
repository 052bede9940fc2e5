// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// partition-bench - partition synthetic blocks and record their plans
//
// usage: partition-bench [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]
//
// each block is generated from the seeded workload, partitioned and
// its plan digest stored in the plan database.  Running again with
// the same configuration against the same database must reproduce
// every digest, any difference aborts the run.
package main
