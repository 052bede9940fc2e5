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

type gridReply struct {
	Block     uint64    `json:"block"`
	NumShards int       `json:"numShards"`
	NumRounds int       `json:"numRounds"`
	Grid      [][][]int `json:"grid"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("block") {
		return fmt.Errorf("missing block number")
	}
	blockNumber := c.Uint64("block")

	p, err := storage.LoadPlan(blockNumber)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "block: %d  transactions: %d  digest: %x\n", blockNumber, p.Count(), p.Digest())
	}

	if c.Bool("grid") {
		return printJson(m.w, gridReply{
			Block:     blockNumber,
			NumShards: p.NumShards,
			NumRounds: p.NumRounds,
			Grid:      p.Grid(),
		})
	}
	return printJson(m.w, p)
}
