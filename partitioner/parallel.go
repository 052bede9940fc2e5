// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package partitioner

import (
	"golang.org/x/sync/errgroup"
)

// work is cut into this many chunks per worker to even out skew
const chunksPerWorker = 4

// run f for every i in [0, n) on the bounded worker pool
//
// returns after every started call has finished, with the first error
func (p *Partitioner) parallel(n int, f func(i int) error) error {
	if 0 == n {
		return nil
	}

	chunks := p.conf.Workers * chunksPerWorker
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(p.conf.Workers)
	for start := 0; start < n; start += size {
		start, end := start, min(start+size, n)
		g.Go(func() error {
			for i := start; i < end; i += 1 {
				if err := f(i); nil != err {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
