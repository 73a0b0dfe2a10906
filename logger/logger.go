/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger configures the go-logging backend shared by the
// rtnorm commands.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultFormat = "%{color}%{time:15:04:05.000} %{level:.4s} %{module}%{color:reset} | %{message}"

// LogLevelFlag selects the verbosity of the commands.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "level of the logging (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "info",
}

// NewLogger routes all modules to stderr at the given level and returns
// a logger for module. An unknown level falls back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(defaultFormat)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	return log
}
