// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/partitioner/counter"
	"github.com/bitmark-inc/partitioner/partitioner"
	"github.com/bitmark-inc/partitioner/storage"
	"github.com/bitmark-inc/partitioner/workload"
)

type bench struct {
	log         *logger.L
	conf        *Configuration
	generator   *workload.Generator
	partitioner *partitioner.Partitioner
	store       bool
	stop        <-chan os.Signal

	blocks       counter.Counter
	transactions counter.Counter
	catchAll     counter.Counter
	replayed     counter.Counter
	elapsed      time.Duration
}

// partition the configured number of blocks
func (b *bench) run() error {
	shards := b.conf.Shards
	last := shards - 1

	for n := 0; n < b.conf.Blocks; n += 1 {
		select {
		case s := <-b.stop:
			b.log.Warnf("stopping on signal: %v", s)
			return nil
		default:
		}

		blockNumber := b.conf.FirstBlock + uint64(n)
		txns, err := b.generator.Block(b.conf.BlockSize)
		if nil != err {
			return err
		}

		start := time.Now()
		result, err := b.partitioner.Partition(txns, shards)
		elapsed := time.Since(start)
		if nil != err {
			return err
		}

		b.elapsed += elapsed
		b.blocks.Increment()
		b.transactions.Add(uint64(len(txns)))

		catchAll := len(result.SubBlock(result.NumRounds-1, last).Transactions)
		b.catchAll.Add(uint64(catchAll))

		b.log.Infof("block: %d  transactions: %d  rounds: %d  catch-all: %d  elapsed: %s", blockNumber, len(txns), result.NumRounds, catchAll, elapsed)

		if !b.store {
			continue
		}
		replay := storage.HasPlan(blockNumber)
		digest, err := storage.StorePlan(blockNumber, result)
		if nil != err {
			b.log.Criticalf("block: %d  digest: %x  store error: %s", blockNumber, digest, err)
			return err
		}
		if replay {
			b.replayed.Increment()
		}
		b.log.Debugf("block: %d  digest: %x  replay: %t", blockNumber, digest, replay)
	}
	return nil
}

// summary of the run
func (b *bench) report(w io.Writer) {
	transactions := b.transactions.Uint64()
	seconds := b.elapsed.Seconds()
	rate := 0.0
	if seconds > 0 {
		rate = float64(transactions) / seconds
	}
	catchAll := 0.0
	if !b.transactions.IsZero() {
		catchAll = 100 * float64(b.catchAll.Uint64()) / float64(transactions)
	}

	fmt.Fprintf(w, "blocks:          %d\n", b.blocks.Uint64())
	fmt.Fprintf(w, "transactions:    %d\n", transactions)
	fmt.Fprintf(w, "elapsed:         %s\n", b.elapsed)
	fmt.Fprintf(w, "transactions/s:  %.0f\n", rate)
	fmt.Fprintf(w, "catch-all:       %.2f%%\n", catchAll)
	if b.store {
		fmt.Fprintf(w, "replay verified: %d\n", b.replayed.Uint64())
	}
}
