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
	"log"
	"os"

	"github.com/fentec-project/rtnorm/logger"
	"github.com/urfave/cli/v2"
)

var rtnormApp = &cli.App{
	Action: RunSampler,
	Name:   "rtnorm",
	Usage:  "draws samples from a normal distribution truncated to [a, b]",
	Flags: []cli.Flag{
		// Distribution
		&LowerBoundFlag,
		&UpperBoundFlag,
		&MeanFlag,
		&StdDevFlag,

		// Output
		&CountFlag,
		&ColumnsFlag,
		&SeedFlag,
		&DensityFlag,
		&SummaryFlag,

		&logger.LogLevelFlag,
	},
}

func main() {
	if err := rtnormApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
