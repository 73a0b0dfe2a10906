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

// Command rtnorm-table regenerates the partition table compiled into
// package sample.
package main

import (
	"bytes"
	_ "embed"
	"log"
	"os"

	"github.com/fentec-project/rtnorm/internal/partition"
	"github.com/fentec-project/rtnorm/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

//go:embed header.txt
var licenseHeader []byte

var (
	LeftCellsFlag = cli.IntFlag{
		Name:  "left",
		Usage: "number of cells left of 0",
		Value: partition.DefaultLeftCells,
	}
	RightCellsFlag = cli.IntFlag{
		Name:  "right",
		Usage: "number of cells right of 0",
		Value: partition.DefaultRightCells,
	}
	OutputFlag = cli.StringFlag{
		Name:  "out",
		Usage: "output file, \"-\" for stdout",
		Value: "partition_table.go",
	}
	PackageFlag = cli.StringFlag{
		Name:  "package",
		Usage: "package clause of the generated file",
		Value: "sample",
	}
)

var tableApp = &cli.App{
	Action: RunGenerate,
	Name:   "rtnorm-table",
	Usage:  "generates the equal-area partition of the standard normal density",
	Flags: []cli.Flag{
		&LeftCellsFlag,
		&RightCellsFlag,
		&OutputFlag,
		&PackageFlag,

		&logger.LogLevelFlag,
	},
}

// RunGenerate builds the table and writes it as Go source.
func RunGenerate(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "rtnorm-table")

	t, err := partition.Build(ctx.Int(LeftCellsFlag.Name), ctx.Int(RightCellsFlag.Name))
	if err != nil {
		return err
	}
	log.Infof("%d cells on [%v, %v], area %v", t.Cells(), t.Min(), t.Max(), t.Area)

	var buf bytes.Buffer
	if err := t.Render(&buf, ctx.String(PackageFlag.Name), licenseHeader); err != nil {
		return err
	}

	out := ctx.String(OutputFlag.Name)
	if out == "-" {
		_, err = ctx.App.Writer.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "cannot write %s", out)
	}
	log.Noticef("wrote %s", out)

	return nil
}

func main() {
	if err := tableApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
