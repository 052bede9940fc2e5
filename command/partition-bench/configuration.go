// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/partitioner/configuration"
	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/partitioner"
	"github.com/bitmark-inc/partitioner/util"
	"github.com/bitmark-inc/partitioner/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultShards     = 4
	defaultBlockSize  = 1000
	defaultBlocks     = 10
	defaultFirstBlock = 1

	defaultAccounts = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "partition-bench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type Configuration struct {
	DataDirectory string                    `gluamapper:"data_directory" json:"data_directory"`
	Shards        int                       `gluamapper:"shards" json:"shards"`
	BlockSize     int                       `gluamapper:"block_size" json:"block_size"`
	Blocks        int                       `gluamapper:"blocks" json:"blocks"`
	FirstBlock    uint64                    `gluamapper:"first_block" json:"first_block"`
	MetricsListen string                    `gluamapper:"metrics_listen" json:"metrics_listen"`
	Workload      workload.Configuration    `gluamapper:"workload" json:"workload"`
	Partitioner   partitioner.Configuration `gluamapper:"partitioner" json:"partitioner"`
	Database      DatabaseType              `gluamapper:"database" json:"database"`
	Logging       logger.Configuration      `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Shards:        defaultShards,
		BlockSize:     defaultBlockSize,
		Blocks:        defaultBlocks,
		FirstBlock:    defaultFirstBlock,

		Workload: workload.Configuration{
			Accounts:   defaultAccounts,
			ReadConfig: true,
		},

		Partitioner: partitioner.Configuration{
			MaxRounds: partitioner.DefaultMaxRounds,
		},

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // no plan database by default
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Shards < 1 {
		return nil, fault.ErrInvalidShardCount
	}
	if options.BlockSize < 0 {
		return nil, fault.ErrInvalidBlockSize
	}
	if options.Blocks < 1 {
		return nil, fault.ErrInvalidBlockSize
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// fail if any of these are not simple file names
	for _, f := range []string{options.Logging.File, options.Database.Name} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", f))
		}
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory, err = util.EnsureDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	if "" != options.Database.Name {
		options.Database.Directory, err = util.EnsureDirectory(options.DataDirectory, options.Database.Directory)
		if nil != err {
			return nil, err
		}
		options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)
	}

	// done
	return options, nil
}
