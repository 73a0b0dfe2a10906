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

package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/fentec-project/rtnorm/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Action = RunGenerate
	app.Flags = tableApp.Flags
	app.Writer = out

	return app
}

func TestCmd_RunGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.go")

	var out bytes.Buffer
	err := newTestApp(&out).Run([]string{"rtnorm-table", "--" + logger.LogLevelFlag.Name, "error",
		"--left", "20", "--right", "25", "--package", "tbl", "--out", path})
	require.NoError(t, err)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(src, licenseHeader))
	assert.Contains(t, string(src), "cellCount = 45")

	f, err := parser.ParseFile(token.NewFileSet(), path, src, 0)
	require.NoError(t, err)
	assert.Equal(t, "tbl", f.Name.Name)
}

func TestCmd_RunGenerateStdout(t *testing.T) {
	var out bytes.Buffer
	err := newTestApp(&out).Run([]string{"rtnorm-table", "--" + logger.LogLevelFlag.Name, "error",
		"--left", "10", "--right", "10", "--out", "-"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "package sample")
	assert.Contains(t, out.String(), "DO NOT EDIT")
}

func TestCmd_RunGenerateMatchesCommittedTable(t *testing.T) {
	var out bytes.Buffer
	err := newTestApp(&out).Run([]string{"rtnorm-table", "--" + logger.LogLevelFlag.Name, "error", "--out", "-"})
	require.NoError(t, err)

	committed, err := os.ReadFile(filepath.Join("..", "..", "sample", "partition_table.go"))
	require.NoError(t, err)
	assert.Equal(t, string(committed), out.String())
}

func TestCmd_RunGenerateInvalidCounts(t *testing.T) {
	var out bytes.Buffer
	err := newTestApp(&out).Run([]string{"rtnorm-table", "--left", "1", "--out", "-"})
	assert.Error(t, err)
}
