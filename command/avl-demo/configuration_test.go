// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), defaultConfigurationFilename)
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestDefaultConfiguration(t *testing.T) {
	options, err := getConfiguration("")
	assert.Nil(t, err, "wrong getConfiguration")

	wd, err := os.Getwd()
	assert.Nil(t, err, "wrong Getwd")

	assert.Equal(t, wd, options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(wd, defaultLogDirectory), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultValues, options.Values, "wrong values")
	assert.Equal(t, []avl.Order{avl.InOrder}, options.orders, "wrong orders")
	assert.True(t, options.Check, "check should be enabled")
	assert.False(t, options.PrintTree, "print should be disabled")
}

func TestDefaultsAreNotShared(t *testing.T) {
	first := defaultConfiguration()
	first.Values[0] = -1
	first.Logging.Levels["main"] = "debug"

	second := defaultConfiguration()
	assert.Equal(t, defaultValues[0], second.Values[0], "values were shared")
	assert.NotContains(t, second.Logging.Levels, "main", "levels were shared")
	assert.NotContains(t, defaultLogLevels, "main", "defaults were modified")
}

func TestLuaConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.values = { 3, 2, 1 }
M.traversals = { "pre-order", "post" }
M.print_tree = true
M.check = false
M.logging = {
  directory = "logs",
  file = "x.log",
  size = 2048,
  count = 3,
  levels = {
    builder = "debug",
  },
}
return M
`)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	directory := filepath.Dir(fileName)
	assert.Equal(t, directory, options.DataDirectory, "wrong data directory")
	assert.Equal(t, []int{3, 2, 1}, options.Values, "wrong values")
	assert.Equal(t, []avl.Order{avl.PreOrder, avl.PostOrder}, options.orders, "wrong orders")
	assert.True(t, options.PrintTree, "wrong print_tree")
	assert.False(t, options.Check, "wrong check")
	assert.Equal(t, filepath.Join(directory, "logs"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "x.log", options.Logging.File, "wrong log file")
	assert.Equal(t, 2048, options.Logging.Size, "wrong log size")
	assert.Equal(t, 3, options.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", options.Logging.Levels["builder"], "wrong builder level")
	assert.Equal(t, "critical", options.Logging.Levels[logger.DefaultTag], "default level lost")
}

func TestLuaConfigurationBadTraversal(t *testing.T) {
	fileName := writeConfiguration(t, `return { traversals = { "sideways" } }`)

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidTraversalOrder, err, "wrong error")
}

func TestLuaConfigurationBadDataDirectory(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = "~" }`)

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "wrong error")

	fileName = writeConfiguration(t, `return { data_directory = "missing" }`)

	_, err = getConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "wrong error: %v", err)
}

func TestMissingConfiguration(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "none.conf"))
	assert.Equal(t, fault.ErrConfigurationFileNotFound, err, "wrong error")
}

func TestGenerateConfiguration(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), defaultConfigurationFilename)

	err := generateConfiguration(fileName)
	assert.Nil(t, err, "wrong generateConfiguration")

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "generated file did not parse")

	expected := defaultConfiguration()
	assert.Equal(t, filepath.Dir(fileName), options.DataDirectory, "wrong data directory")
	assert.Equal(t, expected.Values, options.Values, "wrong values")
	assert.Equal(t, expected.Traversals, options.Traversals, "wrong traversals")
	assert.Equal(t, expected.Check, options.Check, "wrong check")
	assert.Equal(t, expected.PrintTree, options.PrintTree, "wrong print_tree")
	assert.Equal(t, expected.Logging.File, options.Logging.File, "wrong log file")
	assert.Equal(t, expected.Logging.Levels, options.Logging.Levels, "wrong levels")

	err = generateConfiguration(fileName)
	assert.Equal(t, fault.ErrConfigurationFileExists, err, "existing file was overwritten")
}
