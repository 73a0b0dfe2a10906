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
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/fentec-project/rtnorm/logger"
	"github.com/fentec-project/rtnorm/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := cli.NewApp()
	app.Action = RunSampler
	app.Flags = rtnormApp.Flags
	app.Writer = &out

	err := app.Run(append([]string{"rtnorm", "--" + logger.LogLevelFlag.Name, "error"}, args...))

	return out.String(), err
}

func TestCmd_RunSampler(t *testing.T) {
	out, err := runApp(t, "--count", "1000", "--seed", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1002)
	assert.Equal(t, "underlying distribution: Normal(2, 3)", lines[0])
	assert.Equal(t, "truncated interval: [1, 9]", lines[1])

	for _, l := range lines[2:] {
		x, err := strconv.ParseFloat(l, 64)
		require.NoError(t, err)
		assert.True(t, x >= 1 && x <= 9, "sample %v outside [1, 9]", x)
	}
}

func TestCmd_RunSamplerSeedIsReproducible(t *testing.T) {
	first, err := runApp(t, "--count", "50", "--seed", "11")
	require.NoError(t, err)
	second, err := runApp(t, "--count", "50", "--seed", "11")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCmd_RunSamplerDensity(t *testing.T) {
	out, err := runApp(t, "--count", "20", "--seed", "3", "--a=-1", "--b=0.5", "--mu=0", "--sigma=1", "--density")
	require.NoError(t, err)

	tn, err := sample.NewTruncatedNormal(-1, 0.5, 0, 1, sample.NewCryptoSource())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 22)
	for _, l := range lines[2:] {
		fields := strings.Fields(l)
		require.Len(t, fields, 2)
		x, err := strconv.ParseFloat(fields[0], 64)
		require.NoError(t, err)
		p, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		assert.InDelta(t, tn.Prob(x), p, 1e-12)
	}
}

func TestCmd_RunSamplerSummary(t *testing.T) {
	out, err := runApp(t, "--count", "20000", "--seed", "5", "--summary")
	require.NoError(t, err)

	assert.Contains(t, out, "count: 20000\n")
	for _, key := range []string{"mean:", "variance:", "min:", "q1:", "median:", "q3:", "max:"} {
		assert.Contains(t, out, key)
	}
}

func TestCmd_RunSamplerColumns(t *testing.T) {
	out, err := runApp(t, "--count", "10", "--columns", "3", "--seed", "9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	for _, l := range lines[2:] {
		fields := strings.Fields(l)
		require.Len(t, fields, 3)
		for _, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err)
			assert.True(t, x >= 1 && x <= 9, "sample %v outside [1, 9]", x)
		}
	}

	out, err = runApp(t, "--count", "4", "--columns", "2", "--seed", "9", "--density")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Len(t, strings.Fields(lines[2]), 4)
}

func TestCmd_RunSamplerColumnSummary(t *testing.T) {
	out, err := runApp(t, "--count", "5000", "--columns", "2", "--seed", "5", "--summary")
	require.NoError(t, err)

	assert.Contains(t, out, "count: 10000\n")
	assert.Contains(t, out, "column 0 mean:")
	assert.Contains(t, out, "column 1 mean:")
	assert.NotContains(t, out, "column 2 mean:")
}

func TestCmd_RunSamplerInvalidColumns(t *testing.T) {
	_, err := runApp(t, "--columns", "0")
	assert.Error(t, err)
}

func TestCmd_RunSamplerFarTailDensity(t *testing.T) {
	out, err := runApp(t, "--count", "50", "--seed", "1", "--a=12", "--b=13", "--mu=0", "--sigma=1", "--density")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 52)
	for _, l := range lines[2:] {
		fields := strings.Fields(l)
		require.Len(t, fields, 2)
		p, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		assert.False(t, math.IsInf(p, 0) || math.IsNaN(p), "density %v", p)
		assert.True(t, p > 0)
	}
}

func TestCmd_RunSamplerInvalidInterval(t *testing.T) {
	_, err := runApp(t, "--a", "5", "--b", "2")
	assert.ErrorIs(t, err, sample.ErrInvalidInterval)
}

func TestCmd_RunSamplerNegativeCount(t *testing.T) {
	_, err := runApp(t, "--count=-1")
	assert.Error(t, err)
}
