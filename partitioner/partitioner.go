// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/plan"
	"github.com/bitmark-inc/partitioner/transaction"
)

// Partitioner - reusable block partitioner with a bounded worker pool
type Partitioner struct {
	conf     Configuration
	observer Observer
	log      *logger.L
}

// New - create a partitioner
//
// observer may be nil
func New(conf Configuration, observer Observer, log *logger.L) (*Partitioner, error) {
	conf, err := conf.normalise()
	if nil != err {
		return nil, err
	}
	if nil == observer {
		observer = nopObserver{}
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	log.Infof("workers: %d  max rounds: %d", conf.Workers, conf.MaxRounds)

	return &Partitioner{
		conf:     conf,
		observer: observer,
		log:      log,
	}, nil
}

// Configuration - the effective settings after defaults
func (p *Partitioner) Configuration() Configuration {
	return p.conf
}

// Partition - schedule a block of analysed transactions onto numShards
// shards
//
// the transactions are annotated in place with session ids, so the
// slice must not be partitioned by two calls at the same time
func (p *Partitioner) Partition(txns []*transaction.Analyzed, numShards int) (*plan.Plan, error) {
	if numShards < 1 {
		return nil, fault.ErrInvalidShardCount
	}
	for _, txn := range txns {
		if nil == txn {
			return nil, fault.ErrNilTransaction
		}
	}

	start := time.Now()
	r, err := p.register(txns, numShards)
	if nil != err {
		return nil, err
	}
	p.observer.PhaseDone(PhasePreprocess, time.Since(start))
	p.log.Debugf("transactions: %d  shards: %d  senders: %d  locations: %d", len(txns), numShards, r.numSenders, len(r.keys))

	s := &session{
		p:         p,
		txns:      txns,
		numShards: numShards,
		registry:  r,
	}

	start = time.Now()
	grid, err := s.rounds()
	if nil != err {
		p.log.Criticalf("rounds error: %s", err)
		return nil, err
	}
	p.observer.PhaseDone(PhaseRounds, time.Since(start))

	if p.conf.TraceTrackers {
		for id, t := range r.trackers {
			p.log.Tracef("location[%d]: %x  %s", id, r.keys[id], t.Summary())
		}
	}

	start = time.Now()
	result, err := s.assemble(grid)
	if nil != err {
		p.log.Criticalf("edge error: %s", err)
		return nil, err
	}
	p.observer.PhaseDone(PhaseEdges, time.Since(start))

	return result, nil
}

// discarding rounds followed by the catch-all round
//
// later discarding rounds are skipped once nothing remains
func (s *session) rounds() ([][][]int, error) {
	p := s.p
	remaining := UniformPartition(len(s.txns), s.numShards)
	s.starts = startIndices(remaining)

	grid := make([][][]int, 0, p.conf.MaxRounds)
	for round := 0; round < p.conf.MaxRounds-1; round += 1 {
		if round > 0 && 0 == count(remaining) {
			break
		}
		accepted, discarded, err := s.discardingRound(round, remaining)
		if nil != err {
			return nil, err
		}
		grid = append(grid, accepted)
		remaining = discarded

		nAccepted, nDiscarded := count(accepted), count(discarded)
		p.observer.RoundDone(round, nAccepted, nDiscarded)
		p.log.Debugf("round: %d  accepted: %d  discarded: %d", round, nAccepted, nDiscarded)
	}

	round := len(grid)
	cells, err := s.catchAllRound(round, remaining)
	if nil != err {
		return nil, err
	}
	grid = append(grid, cells)

	n := count(cells)
	p.observer.RoundDone(round, n, 0)
	p.log.Debugf("round: %d  catch-all: %d", round, n)

	return grid, nil
}
