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

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/fentec-project/rtnorm/internal/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestPartitionTable_Invariants(t *testing.T) {
	assert.Equal(t, xMin, partitionX[0])
	assert.Equal(t, xMax, partitionX[cellCount])
	assert.Equal(t, 0.0, partitionX[peakCell+1])
	assert.InDelta(t, cellArea, partition.Density(xMax)/xMax, 1e-12*cellArea,
		"tail envelope area should equal the cell area")

	for k := 0; k < cellCount; k++ {
		lo, hi := partitionX[k], partitionX[k+1]
		require.True(t, lo < hi, "breakpoints are not increasing at %d", k)
		assert.True(t, hi-lo >= 1/invH, "cell %d is narrower than a lookup bucket", k)

		inner, outer := hi, lo
		if k > peakCell {
			inner, outer = lo, hi
		}
		assert.InDelta(t, partition.Density(inner), partitionYu[k], 1e-12*partitionYu[k])
		assert.InDelta(t, partition.Density(outer), yl(k), 1e-12*partitionYu[k])
		assert.InDelta(t, cellArea, partitionYu[k]*(hi-lo), 1e-9*cellArea, "cell %d", k)
	}

	assert.Equal(t, i0+int(math.Floor(xMax*invH))+1, len(partitionNcell))
	assert.Equal(t, -int(math.Floor(xMin*invH)), i0)
}

func TestPartitionTable_MatchesBuilder(t *testing.T) {
	tbl, err := partition.Build(partition.DefaultLeftCells, partition.DefaultRightCells)
	require.NoError(t, err)

	require.Equal(t, cellCount, tbl.Cells())
	assert.Equal(t, peakCell, tbl.Peak)
	assert.Equal(t, float64(invH), tbl.InvH)
	assert.Equal(t, i0, tbl.I0)
	assert.Equal(t, cellArea, tbl.Area)
	assert.Equal(t, ylFirst, tbl.Yl(0))
	assert.Equal(t, ylLast, tbl.Yl(cellCount-1))

	assert.Equal(t, partitionX[:], tbl.X)
	assert.Equal(t, partitionYu[:], tbl.Yu)

	ncell := make([]int, len(partitionNcell))
	for i, k := range partitionNcell {
		ncell[i] = int(k)
	}
	assert.Equal(t, ncell, tbl.Ncell)
}

func TestCellOf(t *testing.T) {
	for k := 0; k < cellCount; k++ {
		lo, hi := partitionX[k], partitionX[k+1]
		assert.Equal(t, k, cellOf(lo))
		assert.Equal(t, k, cellOf(lo+(hi-lo)/2))
		assert.Equal(t, k, cellOf(math.Nextafter(hi, math.Inf(-1))))
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100000; i++ {
		v := xMin + (xMax-xMin)*rng.Float64()
		want := sort.Search(cellCount+1, func(j int) bool { return partitionX[j] > v }) - 1
		require.Equal(t, want, cellOf(v), "value %v", v)
	}
}

func TestPlan(t *testing.T) {
	var tests = []struct {
		a, b     float64
		strategy strategy
		reflect  bool
	}{
		{a: 5, b: 8, strategy: strategyRightTail},
		{a: -8, b: -5, strategy: strategyRightTail, reflect: true},
		{a: -2.5, b: 3, strategy: strategyLeftTail},
		{a: -3, b: 2.5, strategy: strategyLeftTail, reflect: true},
		{a: math.Inf(-1), b: math.Inf(1), strategy: strategyLeftTail},
		{a: -1, b: 1, strategy: strategyBand},
		{a: -1, b: 0.5, strategy: strategyBand, reflect: true},
		{a: 2.9, b: math.Inf(1), strategy: strategyBand},
		{a: 0.001, b: 0.002, strategy: strategyNarrow},
		{a: -0.002, b: -0.001, strategy: strategyNarrow, reflect: true},
		{a: xMax, b: 10, strategy: strategyNarrow},
	}

	for _, test := range tests {
		t.Run(test.strategy.String(), func(t *testing.T) {
			s, err := NewTruncatedNormal(test.a, test.b, 0, 1, rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			assert.Equal(t, test.strategy, s.strategy, "interval [%v, %v]", test.a, test.b)
			assert.Equal(t, test.reflect, s.reflect, "interval [%v, %v]", test.a, test.b)
			assert.True(t, math.Abs(s.stdA) <= math.Abs(s.stdB))
		})
	}
}

func TestTruncatedExponential_MatchesTailSampler(t *testing.T) {
	const n = 20000
	a, b := 5.0, 8.0

	ref := make([]float64, n)
	rng := rand.New(rand.NewSource(11))
	for i := range ref {
		var err error
		ref[i], err = truncatedExponential(rng, a, b, DefaultMaxIterations)
		require.NoError(t, err)
		require.True(t, ref[i] >= a && ref[i] <= b)
	}

	s, err := NewTruncatedNormal(a, b, 0, 1, rand.New(rand.NewSource(12)))
	require.NoError(t, err)
	vec := make([]float64, n)
	for i := range vec {
		vec[i], err = s.Sample()
		require.NoError(t, err)
	}

	sort.Float64s(ref)
	sort.Float64s(vec)
	d := stat.KolmogorovSmirnov(ref, nil, vec, nil)
	crit := math.Sqrt(-0.5*math.Log(1e-4/2)) * math.Sqrt(2.0/n)
	assert.Less(t, d, crit)
}

func TestTruncatedUniform(t *testing.T) {
	var tests = [][2]float64{{0, 1e-3}, {-1e-3, 2e-3}, {-2e-3, -1e-3}}
	rng := rand.New(rand.NewSource(5))

	for _, test := range tests {
		a, b := test[0], test[1]
		sum := 0.0
		for i := 0; i < 10000; i++ {
			v, err := truncatedUniform(rng, a, b, DefaultMaxIterations)
			require.NoError(t, err)
			require.True(t, v >= a && v <= b)
			sum += v
		}
		// the density is almost flat on such short intervals
		assert.InDelta(t, (a+b)/2, sum/10000, 0.05*(b-a))
	}
}

func TestSampleBand_Branches(t *testing.T) {
	t.Run("tail cell", func(t *testing.T) {
		a, b := 3.0, math.Inf(1)
		ka, kb := cellOf(a), cellCount
		cells := float64(kb - ka + 1)
		src := &sequenceSource{vals: []float64{
			(cells - 0.5) / cells,
			math.Exp(-xMax * 0.1),
			math.Exp(-1),
		}}
		v, err := sampleBand(src, a, b, ka, kb, 1)
		require.NoError(t, err)
		assert.InDelta(t, xMax+0.1, v, 1e-12)
	})

	t.Run("interior cell", func(t *testing.T) {
		a, b := -1.0, 1.0
		ka, kb := cellOf(a), cellOf(b)
		cells := float64(kb - ka + 1)
		k := peakCell
		src := &sequenceSource{vals: []float64{
			(float64(k-ka) + 0.5) / cells,
			0.5,
		}}
		v, err := sampleBand(src, a, b, ka, kb, 1)
		require.NoError(t, err)
		d := partitionX[k+1] - partitionX[k]
		assert.InDelta(t, partitionX[k]+0.5*d*partitionYu[k]/yl(k), v, 1e-15)
	})

	t.Run("boundary cell outside interval", func(t *testing.T) {
		a, b := -1.0, 1.0
		ka, kb := cellOf(a), cellOf(b)
		cells := float64(kb - ka + 1)
		// propose the left edge of cell ka, which lies below a
		src := &sequenceSource{vals: []float64{0, 0}}
		_, err := sampleBand(src, a, b, ka, kb, 3)
		assert.ErrorIs(t, err, ErrNotConverged)
		assert.True(t, partitionX[ka] < a)
		assert.True(t, cells > minBandCells)
	})
}

// sequenceSource cycles through a fixed list of uniform values.
type sequenceSource struct {
	vals []float64
	i    int
}

func (s *sequenceSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func (s *sequenceSource) NormFloat64() float64 {
	return 0
}
