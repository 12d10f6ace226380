// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrBalanceMismatch            = InvalidError("balance does not match sub-tree heights")
	ErrBalanceOutOfRange          = InvalidError("balance is outside -1…+1")
	ErrConfigurationFileExists    = ExistsError("configuration file already exists")
	ErrConfigurationFileNotFound  = NotFoundError("configuration file not found")
	ErrConfigurationNotTable      = ProcessError("configuration did not return a table")
	ErrCountMismatch              = InvalidError("tree count does not match nodes present")
	ErrHeightMismatch             = InvalidError("height does not match sub-tree heights")
	ErrInvalidDataDirectory       = InvalidError("data directory is not valid")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidTraversalOrder      = InvalidError("traversal order is not valid")
	ErrInvalidValue               = InvalidError("value is not an integer")
	ErrMissingConfigurationFile   = NotFoundError("configuration file is required")
	ErrMultipleConfigurationFiles = InvalidError("only one configuration file is allowed")
	ErrNodeCountMismatch          = InvalidError("node count does not match sub-tree sizes")
	ErrNotADirectory              = InvalidError("path is not a directory")
	ErrOrderViolation             = InvalidError("value is out of order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
