// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- avl-demo.conf  -*- mode: lua -*-

local M = {}

-- directory for relative paths, "." is the directory of this file
M.data_directory = "{{.DataDirectory}}"

-- values inserted in order, duplicates are ignored
M.values = { {{- range $i, $v := .Values}}{{if $i}},{{end}} {{$v}}{{end}} }

-- any of: "in-order", "pre-order", "post-order"
M.traversals = { {{- range $i, $v := .Traversals}}{{if $i}},{{end}} "{{$v}}"{{end}} }

-- draw the tree after the summary
M.print_tree = {{.PrintTree}}

-- verify the balance of every node after building
M.check = {{.Check}}

-- logging configuration
M.logging = {
  directory = "{{.Logging.Directory}}",
  file = "{{.Logging.File}}",
  size = {{.Logging.Size}},
  count = {{.Logging.Count}},
  console = {{.Logging.Console}},
  levels = {
{{- range $tag, $level := .Logging.Levels}}
    {{printf "[%q]" $tag}} = "{{$level}}",
{{- end}}
  }
}

return M
`
)
