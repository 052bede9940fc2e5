// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/partitioner/background"
	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/metrics"
	"github.com/bitmark-inc/partitioner/partitioner"
	"github.com/bitmark-inc/partitioner/storage"
	"github.com/bitmark-inc/partitioner/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional plan database
	if "" != theConfiguration.Database.Name {
		log.Infof("database: %q", theConfiguration.Database.Name)
		err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
		if nil != err {
			log.Criticalf("storage initialise error: %s", err)
			exitwithstatus.Message("storage initialise error: %s", err)
		}
		defer storage.Finalise()
	}

	registry := prometheus.NewRegistry()
	observer, err := metrics.New(registry)
	if nil != err {
		log.Criticalf("metrics initialise error: %s", err)
		exitwithstatus.Message("metrics initialise error: %s", err)
	}

	// list of background processes to start
	processes := background.Processes{}
	if "" != theConfiguration.MetricsListen {
		processes = append(processes, &metricsListener{
			log:      logger.New("metrics"),
			listen:   theConfiguration.MetricsListen,
			gatherer: registry,
		})
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	generator, err := workload.New(theConfiguration.Workload)
	if nil != err {
		log.Criticalf("workload initialise error: %s", err)
		exitwithstatus.Message("workload initialise error: %s", err)
	}
	log.Infof("accounts: %d", generator.Accounts())

	p, err := partitioner.New(theConfiguration.Partitioner, observer, logger.New("partitioner"))
	if nil != err {
		log.Criticalf("partitioner initialise error: %s", err)
		exitwithstatus.Message("partitioner initialise error: %s", err)
	}

	// stop between blocks on a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	b := &bench{
		log:         log,
		conf:        theConfiguration,
		generator:   generator,
		partitioner: p,
		store:       "" != theConfiguration.Database.Name,
		stop:        ch,
	}
	err = b.run()
	if nil != err {
		log.Criticalf("bench error: %s", err)
		exitwithstatus.Message("bench error: %s", err)
	}

	if 0 == len(options["quiet"]) {
		b.report(os.Stdout)
		if len(options["verbose"]) > 0 {
			_ = metrics.WriteText(os.Stdout, registry)
		}
	}
}
