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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fentec-project/rtnorm/data"
	"github.com/fentec-project/rtnorm/logger"
	"github.com/fentec-project/rtnorm/sample"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
)

var (
	LowerBoundFlag = cli.Float64Flag{
		Name:  "a",
		Usage: "lower truncation bound",
		Value: 1,
	}
	UpperBoundFlag = cli.Float64Flag{
		Name:  "b",
		Usage: "upper truncation bound",
		Value: 9,
	}
	MeanFlag = cli.Float64Flag{
		Name:  "mu",
		Usage: "mean of the underlying normal distribution",
		Value: 2,
	}
	StdDevFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "standard deviation of the underlying normal distribution",
		Value: 3,
	}
	CountFlag = cli.IntFlag{
		Name:  "count",
		Usage: "number of samples to draw",
		Value: 100000,
	}
	ColumnsFlag = cli.IntFlag{
		Name:  "columns",
		Usage: "number of samples printed per line",
		Value: 1,
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "generator seed (default: current time)",
	}
	DensityFlag = cli.BoolFlag{
		Name:  "density",
		Usage: "print the truncated density next to each sample",
	}
	SummaryFlag = cli.BoolFlag{
		Name:  "summary",
		Usage: "print summary statistics instead of the samples",
	}
)

// RunSampler draws the requested samples and writes them to the app's writer.
func RunSampler(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "rtnorm")

	a := ctx.Float64(LowerBoundFlag.Name)
	b := ctx.Float64(UpperBoundFlag.Name)
	mu := ctx.Float64(MeanFlag.Name)
	sigma := ctx.Float64(StdDevFlag.Name)
	count := ctx.Int(CountFlag.Name)
	if count < 0 {
		return errors.Errorf("count must not be negative, got %d", count)
	}
	columns := ctx.Int(ColumnsFlag.Name)
	if columns < 1 {
		return errors.Errorf("columns must be positive, got %d", columns)
	}

	seed := ctx.Uint64(SeedFlag.Name)
	if !ctx.IsSet(SeedFlag.Name) {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("seed %d", seed)

	tn, err := sample.NewTruncatedNormal(a, b, mu, sigma, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	out := bufio.NewWriter(ctx.App.Writer)
	defer out.Flush()

	fmt.Fprintf(out, "underlying distribution: Normal(%v, %v)\n", mu, sigma)
	fmt.Fprintf(out, "truncated interval: [%v, %v]\n", a, b)

	start := time.Now()
	m, err := data.NewRandomMatrix(count, columns, tn)
	if err != nil {
		return errors.Wrap(err, "cannot draw samples")
	}
	if err := m.CheckBound(tn.Bounds()); err != nil {
		return err
	}
	log.Infof("drew %d samples in %v", count*columns, time.Since(start))

	if ctx.Bool(SummaryFlag.Name) {
		err = writeSummary(out, m)
	} else {
		err = writeSamples(out, m, tn, ctx.Bool(DensityFlag.Name))
	}
	if err != nil {
		return err
	}

	return out.Flush()
}

// writeSamples prints one matrix row per line, each value followed by
// its density when density is set.
func writeSamples(w io.Writer, m data.Matrix, tn *sample.TruncatedNormal, density bool) error {
	for _, row := range m {
		line := row.String()
		if density {
			p := row.Apply(tn.Prob)
			fields := make([]string, 0, 2*len(row))
			for i := range row {
				fields = append(fields, strconv.FormatFloat(row[i], 'g', -1, 64), strconv.FormatFloat(p[i], 'g', -1, 64))
			}
			line = strings.Join(fields, " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func writeSummary(w io.Writer, m data.Matrix) error {
	if m.Rows() == 0 {
		return errors.New("summary needs at least one sample")
	}

	v := m.Flatten()
	fmt.Fprintf(w, "count: %d\n", len(v))
	fmt.Fprintf(w, "mean: %v\n", v.Mean())
	fmt.Fprintf(w, "variance: %v\n", v.Variance())
	fmt.Fprintf(w, "min: %v\n", v.Min())
	fmt.Fprintf(w, "q1: %v\n", v.Quantile(0.25))
	fmt.Fprintf(w, "median: %v\n", v.Quantile(0.5))
	fmt.Fprintf(w, "q3: %v\n", v.Quantile(0.75))
	fmt.Fprintf(w, "max: %v\n", v.Max())

	if m.Cols() > 1 {
		for j, col := range m.Transpose() {
			fmt.Fprintf(w, "column %d mean: %v\n", j, col.Mean())
		}
	}

	return nil
}
