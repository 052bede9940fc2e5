// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/partitioner/storage"
)

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("block") {
		return fmt.Errorf("missing block number")
	}
	blockNumber := c.Uint64("block")

	err := storage.DeletePlan(blockNumber)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "deleted block: %d\n", blockNumber)
	}
	return nil
}
