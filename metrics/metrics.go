// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus collectors for partitioner progress
package metrics

import (
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// round outcomes
const (
	Accepted  = "accepted"
	Discarded = "discarded"
)

// Observer - records partitioner phases and rounds
type Observer struct {
	phases *prometheus.HistogramVec
	rounds *prometheus.CounterVec
}

// New - create the collectors and register them
func New(registerer prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		phases: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "partitioner_phase_seconds",
				Help:    "Time spent in each phase of block partitioning",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 20),
			},
			[]string{"phase"},
		),
		rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partitioner_round_transactions",
				Help: "Transactions accepted and discarded per round",
			},
			[]string{"round", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{o.phases, o.rounds} {
		if err := registerer.Register(c); nil != err {
			return nil, err
		}
	}
	return o, nil
}

// PhaseDone - observe the duration of a phase
func (o *Observer) PhaseDone(phase string, elapsed time.Duration) {
	o.phases.WithLabelValues(phase).Observe(elapsed.Seconds())
}

// RoundDone - count the outcome of a round
func (o *Observer) RoundDone(round int, accepted int, discarded int) {
	r := strconv.Itoa(round)
	o.rounds.WithLabelValues(r, Accepted).Add(float64(accepted))
	o.rounds.WithLabelValues(r, Discarded).Add(float64(discarded))
}

// WriteText - dump every metric of a gatherer in the text exposition
// format
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if nil != err {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); nil != err {
			return err
		}
	}
	return nil
}
