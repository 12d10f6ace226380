// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create the directory and any parents if missing
// and fail if the path exists but is not a directory
func EnsureDirectory(directory string) error {
	if err := os.MkdirAll(directory, 0700); nil != err {
		return err
	}
	fileInfo, err := os.Stat(directory)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fault.ErrNotADirectory
	}
	return nil
}
