// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"time"
)

// phase names reported to an Observer
const (
	PhasePreprocess = "preprocess"
	PhaseRounds     = "multi_rounds"
	PhaseEdges      = "add_edges"
)

//go:generate mockgen -source=observer.go -destination=mocks/observer.go -package=mocks

// Observer - receives progress of each partitioning call
//
// methods are called from the goroutine that called Partition,
// RoundDone is also called for the catch-all round
type Observer interface {
	PhaseDone(phase string, elapsed time.Duration)
	RoundDone(round int, accepted int, discarded int)
}

type nopObserver struct{}

func (nopObserver) PhaseDone(string, time.Duration) {}
func (nopObserver) RoundDone(int, int, int)         {}
