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

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
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

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	// without a configuration file the built-in defaults are used
	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: config-file error: %s  detected: %d", program, fault.ErrMultipleConfigurationFiles, n)
	}

	watch := len(options["watch"]) > 0
	if watch && "" == configurationFile {
		exitwithstatus.Message("%s: watch error: %s", program, fault.ErrMissingConfigurationFile)
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	values, err := commandValues(arguments, theConfiguration.Values)
	if nil != err {
		exitwithstatus.Message("%s: arguments: %q  error: %s", program, arguments, err)
	}

	// start logging
	if err = util.EnsureDirectory(theConfiguration.Logging.Directory); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	verbose := len(options["verbose"]) > 0
	builder := logger.New("builder")

	if err := run(builder, theConfiguration, values, os.Stdout, verbose); nil != err {
		log.Criticalf("run error: %s", err)
		exitwithstatus.Message("%s: run error: %s", program, err)
	}

	if !watch {
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix))
	if nil != err {
		log.Criticalf("watcher error: %s", err)
		exitwithstatus.Message("%s: watcher error: %s", program, err)
	}
	defer watcher.Close()

	// command line values take precedence over the file
	fixedValues := len(arguments) > 1

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	log.Infof("watching: %q", configurationFile)

loop:
	for {
		select {
		case <-watcher.Changed():
			newConfiguration, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("reload configuration: %q  error: %s", configurationFile, err)
				continue loop
			}
			if !fixedValues {
				values = newConfiguration.Values
			}
			if err := run(builder, newConfiguration, values, os.Stdout, verbose); nil != err {
				log.Errorf("run error: %s", err)
			}

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop
		}
	}
}
