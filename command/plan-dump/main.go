// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/partitioner/storage"
	"github.com/bitmark-inc/partitioner/util"
)

type metadata struct {
	file    string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "plan-dump"
	app.Usage = "inspect a plan database written by partition-bench"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "*plan database `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "list recorded blocks and their plan digests",
			Action: runList,
		},
		{
			Name:      "show",
			Usage:     "display the plan of a block as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*block `NUMBER`",
				},
				cli.BoolFlag{
					Name:  "grid, g",
					Usage: " only show original indices per round and shard",
				},
			},
			Action: runShow,
		},
		{
			Name:   "latest",
			Usage:  "display the highest recorded block and its plan digest",
			Action: runLatest,
		},
		{
			Name:      "delete",
			Usage:     "remove the plan of a block so it can be recorded again",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*block `NUMBER`",
				},
			},
			Action: runDelete,
		},
		{
			Name:  "version",
			Usage: "display plan-dump version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open the database
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("file")
		if "" == file {
			return fmt.Errorf("missing database file")
		}
		if !util.EnsureFileExists(file) {
			return fmt.Errorf("database: %q does not exist", file)
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "database: %q\n", file)
		}

		// only delete modifies the database
		readOnly := storage.ReadOnly
		if "delete" == command {
			readOnly = storage.ReadWrite
		}

		err := storage.Initialise(file, readOnly)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			storage.Finalise()
		}
		return nil
	}

	return app
}
