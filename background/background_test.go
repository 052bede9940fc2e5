// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/bitmark-inc/partitioner/background"
)

type counting struct {
	started  int32
	count    int64
	finished int32
}

func (state *counting) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.StoreInt32(&state.started, 1)
	step := args.(int64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.count, step)
		}
	}

	atomic.StoreInt32(&state.finished, 1)
}

func TestBackground(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	proc1 := &counting{}
	proc2 := &counting{}

	p := background.Start(background.Processes{proc1, proc2}, int64(3))
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	for i, proc := range []*counting{proc1, proc2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&proc.started), "%d: started", i)
		assert.Equal(t, int32(1), atomic.LoadInt32(&proc.finished), "%d: finished", i)
		count := atomic.LoadInt64(&proc.count)
		assert.True(t, count > 0, "%d: count: %d", i, count)
		assert.Equal(t, int64(0), count%3, "%d: step", i)
	}

	// a second stop must not block or panic
	p.Stop()
}

func TestEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
