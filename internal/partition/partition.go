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

// Package partition builds the equal-area decomposition of the standard
// normal density used by the truncated normal sampler.
//
// The domain [xMin, xMax] is split into cells whose upper envelope
// rectangles all have the same area A. The breakpoint 0 separates the
// increasing and decreasing halves of the density, so the upper envelope
// of a cell is the density at its endpoint closer to 0. A is chosen such
// that the exponential envelope of the right tail beyond xMax,
// phi(xMax)/xMax, has area A as well.
package partition

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Default cell counts on each side of the density peak. They place
// xMin close to -2.0086 and xMax close to 3.4867.
const (
	DefaultLeftCells  = 1823
	DefaultRightCells = 1909
)

// walkLimit is where the standard normal density underflows.
const walkLimit = 38.0

// Table is a partition of the standard normal density.
type Table struct {
	// X holds the cell breakpoints, X[0] = Min, X[len(X)-1] = Max.
	X []float64
	// Yu holds the upper density envelope of each cell.
	Yu []float64
	// Ncell maps lookup buckets of width 1/InvH to cell indices.
	Ncell []int
	// Area is the common area of all envelope rectangles.
	Area float64
	// InvH is the number of lookup buckets per unit length.
	InvH float64
	// I0 is the bucket offset, -floor(Min*InvH).
	I0 int
	// Peak is the index of the last cell left of 0.
	Peak int
}

// Build computes a table with leftCells cells on [Min, 0] and
// rightCells cells on [0, Max].
func Build(leftCells, rightCells int) (*Table, error) {
	if leftCells < 2 || rightCells < 2 {
		return nil, errors.Errorf("partition needs at least 2 cells per side, got %d and %d",
			leftCells, rightCells)
	}
	if leftCells+rightCells > math.MaxUint16 {
		return nil, errors.Errorf("partition of %d cells does not fit the lookup table",
			leftCells+rightCells)
	}

	area, err := tailMatchingArea(rightCells)
	if err != nil {
		return nil, err
	}

	right := walk(area, rightCells, 1)
	left := walk(area, leftCells, -1)
	if len(right) != rightCells+1 || len(left) != leftCells+1 {
		return nil, errors.Errorf("density underflow while walking %d+%d cells", leftCells, rightCells)
	}

	n := leftCells + rightCells
	x := make([]float64, 0, n+1)
	for i := len(left) - 1; i >= 0; i-- {
		x = append(x, left[i])
	}
	x = append(x, right[1:]...)

	yu := make([]float64, n)
	minWidth := math.Inf(1)
	for k := 0; k < n; k++ {
		if k < leftCells {
			yu[k] = Density(x[k+1])
		} else {
			yu[k] = Density(x[k])
		}
		minWidth = math.Min(minWidth, x[k+1]-x[k])
	}

	t := &Table{
		X:    x,
		Yu:   yu,
		Area: area,
		Peak: leftCells - 1,
	}
	t.InvH = math.Ceil(1 / minWidth)
	t.I0 = -int(math.Floor(x[0] * t.InvH))
	t.Ncell = t.lookup()

	return t, nil
}

// tailMatchingArea finds by bisection the area A for which walking
// rightCells cells from 0 ends at a point xMax with phi(xMax)/xMax = A.
func tailMatchingArea(rightCells int) (float64, error) {
	lo := 0.1 / float64(rightCells)
	hi := 2 / float64(rightCells)
	if tailGap(lo, rightCells) <= 0 || tailGap(hi, rightCells) >= 0 {
		return 0, errors.Errorf("cannot bracket the cell area for %d cells", rightCells)
	}

	for {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break
		}
		if tailGap(mid, rightCells) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// tailGap is phi(xMax)/xMax - area for the walk with the given area.
func tailGap(area float64, cells int) float64 {
	x := walk(area, cells, 1)
	if len(x) != cells+1 {
		return -area
	}
	end := x[cells]

	return Density(end)/end - area
}

// walk steps away from 0 in the given direction so that every visited
// cell has envelope area equal to area. The envelope of each cell is the
// density at the cell's inner endpoint, which makes the recursion explicit.
// The walk stops early if the density underflows.
func walk(area float64, cells int, dir float64) []float64 {
	x := make([]float64, 1, cells+1)
	for j := 0; j < cells; j++ {
		next := x[j] + dir*area/Density(x[j])
		if math.Abs(next) > walkLimit {
			break
		}
		x = append(x, next)
	}

	return x
}

// lookup builds the bucket to cell map: bucket i starts at (i-I0)/InvH
// and maps to the cell containing its start.
func (t *Table) lookup() []int {
	n := t.Cells()
	size := t.I0 + int(math.Floor(t.Max()*t.InvH)) + 1
	ncell := make([]int, size)
	for i := range ncell {
		v := float64(i-t.I0) / t.InvH
		k := sort.Search(len(t.X), func(j int) bool { return t.X[j] > v }) - 1
		if k < 0 {
			k = 0
		}
		if k > n-1 {
			k = n - 1
		}
		ncell[i] = k
	}

	return ncell
}

// Cells returns the number of cells between Min and Max.
func (t *Table) Cells() int {
	return len(t.Yu)
}

// Min returns the leftmost breakpoint.
func (t *Table) Min() float64 {
	return t.X[0]
}

// Max returns the rightmost breakpoint.
func (t *Table) Max() float64 {
	return t.X[len(t.X)-1]
}

// Yl returns the lower density envelope of cell k, which is the upper
// envelope of the neighbouring cell further from the peak.
func (t *Table) Yl(k int) float64 {
	switch {
	case k == 0:
		return Density(t.Min())
	case k == t.Cells()-1:
		return Density(t.Max())
	case k <= t.Peak:
		return t.Yu[k-1]
	default:
		return t.Yu[k+1]
	}
}
