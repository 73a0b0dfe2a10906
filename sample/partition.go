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

package sample

import "math"

//go:generate go run ../cmd/rtnorm-table --out partition_table.go

const (
	// minBandCells is the smallest number of admissible cells for
	// which the partition is used; narrower bands fall back to the
	// truncated exponential proposal.
	minBandCells = 5
	// logTwoPi is ln(2*pi).
	logTwoPi = 1.8378770664093454835606594728112
)

// cellOf returns the index of the cell containing v, for
// xMin <= v < xMax. The lookup bucket gives the cell containing the
// bucket start; since no cell is narrower than a bucket, v lies in
// that cell or the next one.
func cellOf(v float64) int {
	i := i0 + int(math.Floor(v*invH))
	if i < 0 {
		i = 0
	} else if i >= len(partitionNcell) {
		i = len(partitionNcell) - 1
	}

	k := int(partitionNcell[i])
	for k < cellCount-1 && v >= partitionX[k+1] {
		k++
	}
	for k > 0 && v < partitionX[k] {
		k--
	}

	return k
}

// yl returns the lower density envelope of cell k. The density
// decreases away from the peak, so the floor of a cell is the
// ceiling of its neighbour further from the peak.
func yl(k int) float64 {
	switch {
	case k == 0:
		return ylFirst
	case k == cellCount-1:
		return ylLast
	case k <= peakCell:
		return partitionYu[k-1]
	default:
		return partitionYu[k+1]
	}
}
