// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultValues = []int{200, 100, 300, 400, 500, 50, 25, 600, 700, 15, 450, 350}

	defaultTraversals = []string{avl.InOrder.String()}

	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - decoded from the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Values        []int                `gluamapper:"values" json:"values"`
	Traversals    []string             `gluamapper:"traversals" json:"traversals"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	orders []avl.Order
}

func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Values:        append([]int(nil), defaultValues...),
		Traversals:    append([]string(nil), defaultTraversals...),
		PrintTree:     false,
		Check:         true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
// an empty file name selects the built-in defaults relative to the
// current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	// absolute path to the main directory
	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = filepath.Clean(dataDirectory) // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	if err := options.parseTraversals(); nil != err {
		return nil, err
	}

	return options, nil
}

// convert the traversal names
func (options *Configuration) parseTraversals() error {
	options.orders = make([]avl.Order, 0, len(options.Traversals))
	for _, s := range options.Traversals {
		order, err := avl.ParseOrder(s)
		if nil != err {
			return err
		}
		options.orders = append(options.orders, order)
	}
	return nil
}
