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

package data

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fentec-project/rtnorm/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler(t *testing.T, a, b float64) sample.Sampler {
	s, err := sample.NewTruncatedNormal(a, b, 0, 1, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	return s
}

func TestVector_CheckBound(t *testing.T) {
	v, err := NewRandomVector(1000, newTestSampler(t, 0.5, 0.75))
	require.NoError(t, err)

	assert.NoError(t, v.CheckBound(0.5, 0.75))
	assert.Error(t, v.CheckBound(0.6, 0.75))
	assert.Error(t, NewVector([]float64{math.NaN()}).CheckBound(-1, 1))
}

func TestVector_Statistics(t *testing.T) {
	v := NewVector([]float64{4, 1, 3, 2})

	assert.Equal(t, 2.5, v.Mean())
	assert.InDelta(t, 5.0/3, v.Variance(), 1e-12)
	assert.Equal(t, 1.0, v.Min())
	assert.Equal(t, 4.0, v.Max())
	assert.Equal(t, Vector{1, 2, 3, 4}, v.Sorted())
	assert.Equal(t, Vector{4, 1, 3, 2}, v, "Sorted should not modify the receiver")
	assert.Equal(t, 2.0, v.Quantile(0.5))
	assert.Equal(t, 4.0, v.Quantile(1))
}

func TestVector_SampleMoments(t *testing.T) {
	// half-normal on [0, inf): mean sqrt(2/pi), variance 1-2/pi
	v, err := NewRandomVector(100000, newTestSampler(t, 0, math.Inf(1)))
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(2/math.Pi), v.Mean(), 0.01)
	assert.InDelta(t, 1-2/math.Pi, v.Variance(), 0.01)
	assert.True(t, v.Min() >= 0)
}

func TestVector_Apply(t *testing.T) {
	v := NewVector([]float64{1, 4, 9})
	assert.Equal(t, Vector{1, 2, 3}, v.Apply(math.Sqrt))
}

func TestVector_Copy(t *testing.T) {
	v := NewVector([]float64{1, 2})
	c := v.Copy()
	c[0] = 5

	assert.Equal(t, Vector{1, 2}, v)
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "1 -0.5 3", NewVector([]float64{1, -0.5, 3}).String())
}
