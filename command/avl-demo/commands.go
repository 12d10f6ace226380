// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/templates"
	"github.com/bitmark-inc/avltree/util"
)

const (
	defaultConfigurationFilename = "avl-demo.conf"
)

// setup command handler
//
// commands that run before the configuration file is read
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-config", "gen":
		fileName := defaultConfigurationFilename
		if len(arguments) > 0 && "" != arguments[0] {
			fileName = arguments[0]
		}
		if err := generateConfiguration(fileName); nil != err {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "run", "r":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--watch] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-config [FILE]          (gen)    - create a sample configuration in: %q\n", "FILE")
		fmt.Printf("                                        default file: %q\n", defaultConfigurationFilename)
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  run [N...]                 (r)      - build a tree from the values N...\n")
		fmt.Printf("                                        or from the configuration, same as no arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to run
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// write a configuration file holding the defaults
func generateConfiguration(fileName string) error {
	if util.EnsureFileExists(fileName) {
		return fault.ErrConfigurationFileExists
	}

	tmpl, err := template.New("config").Parse(templates.ConfigurationTemplate)
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}

	options := defaultConfiguration()
	err = tmpl.Execute(f, options)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(fileName)
	}
	return err
}
