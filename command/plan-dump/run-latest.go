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

func runLatest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	blockNumber, digest, found, err := storage.LatestPlan()
	if nil != err {
		return err
	}
	if !found {
		return fmt.Errorf("no plans recorded")
	}

	fmt.Fprintf(m.w, "%d  %x\n", blockNumber, digest)
	return nil
}
