// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/report"
)

// values from "run N…" arguments, otherwise from the configuration
func commandValues(arguments []string, configured []int) ([]int, error) {
	if len(arguments) < 2 {
		return configured, nil
	}
	switch arguments[0] {
	case "run", "r":
	default:
		return configured, nil
	}

	values := make([]int, 0, len(arguments)-1)
	for _, a := range arguments[1:] {
		v, err := strconv.Atoi(a)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		values = append(values, v)
	}
	return values, nil
}

// build a tree from the values and write the report
func run(log *logger.L, options *Configuration, values []int, w io.Writer, verbose bool) error {

	tree := avl.New[int]()
	for _, v := range values {
		if tree.Insert(v) {
			log.Debugf("insert: %d  count: %d  height: %d", v, tree.Count(), tree.Height())
		} else {
			log.Debugf("duplicate: %d ignored", v)
		}
	}
	log.Infof("values: %d  count: %d  height: %d", len(values), tree.Count(), tree.Height())

	// a failure here means the balancing code is broken
	if options.Check {
		fault.PanicIfError("tree check", tree.Check())
		log.Debug("tree check passed")
	}

	return report.Write(w, tree, report.Options{
		Traversals: options.orders,
		PrintTree:  options.PrintTree || verbose,
	})
}
