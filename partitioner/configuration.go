// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"runtime"

	"github.com/bitmark-inc/partitioner/fault"
)

// DefaultMaxRounds - one discarding round followed by the catch-all round
const DefaultMaxRounds = 2

// Configuration - tunables for a partitioner
type Configuration struct {
	// size of the worker pool, zero selects the number of CPUs
	Workers int `gluamapper:"workers" json:"workers"`

	// rounds including the final catch-all round, zero selects
	// DefaultMaxRounds
	MaxRounds int `gluamapper:"max_rounds" json:"max_rounds"`

	// log a summary of every location tracker at trace level
	TraceTrackers bool `gluamapper:"trace_trackers" json:"trace_trackers"`
}

// apply defaults and check ranges
func (conf Configuration) normalise() (Configuration, error) {
	switch {
	case 0 == conf.Workers:
		conf.Workers = runtime.NumCPU()
	case conf.Workers < 0:
		return conf, fault.ErrInvalidWorkerCount
	}

	switch {
	case 0 == conf.MaxRounds:
		conf.MaxRounds = DefaultMaxRounds
	case conf.MaxRounds < 2:
		return conf, fault.ErrInvalidRoundCount
	}
	return conf, nil
}
