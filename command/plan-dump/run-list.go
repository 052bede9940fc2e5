// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/partitioner/plan"
	"github.com/bitmark-inc/partitioner/storage"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	n := 0
	err := storage.Digests(func(blockNumber uint64, digest plan.Digest) error {
		fmt.Fprintf(m.w, "%d  %x\n", blockNumber, digest)
		n += 1
		return nil
	})
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "blocks: %d\n", n)
	}
	return nil
}
