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
	"math/rand"
	"testing"

	"github.com/fentec-project/rtnorm/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	m, err := NewRandomMatrix(rows, cols, newTestSampler(t, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, rows, m.Rows())
	assert.Equal(t, cols, m.Cols())
	assert.NoError(t, m.CheckBound(2, 3))
	assert.Len(t, m.Flatten(), rows*cols)
}

func TestMatrix_Uniform(t *testing.T) {
	u, err := sample.NewUniformRange(-4, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	m, err := NewRandomMatrix(200, 50, u)
	require.NoError(t, err)

	assert.NoError(t, m.CheckBound(-4, 4))
	assert.InDelta(t, 0, m.Flatten().Mean(), 0.1)
}

func TestMatrix_Rows(t *testing.T) {
	m, _ := NewRandomMatrix(2, 3, newTestSampler(t, -1, 1))
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Cols(t *testing.T) {
	m, _ := NewRandomMatrix(2, 3, newTestSampler(t, -1, 1))
	assert.Equal(t, 3, m.Cols())
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestMatrix_Invalid(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestMatrix_GetCol(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	col, err := m.GetCol(1)
	require.NoError(t, err)
	assert.Equal(t, Vector{2, 4, 6}, col)

	_, err = m.GetCol(2)
	assert.Error(t, err)
	_, err = m.GetCol(-1)
	assert.Error(t, err)
}

func TestMatrix_Transpose(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	want, _ := NewMatrix([]Vector{{1, 4}, {2, 5}, {3, 6}})

	assert.Equal(t, want, m.Transpose())
}

func TestMatrix_CheckBound(t *testing.T) {
	m, _ := NewMatrix([]Vector{{0.1, 0.2}, {0.3, 1.5}})

	assert.NoError(t, m.CheckBound(0, 2))
	assert.Error(t, m.CheckBound(0, 1))
}

func TestMatrix_Flatten(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2}, {3, 4}})
	assert.Equal(t, Vector{1, 2, 3, 4}, m.Flatten())

	var empty Matrix
	assert.Empty(t, empty.Flatten())
	assert.Empty(t, empty.Transpose())
}
