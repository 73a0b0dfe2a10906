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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/rtnorm/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformRange(t *testing.T) {
	u, err := sample.NewUniformRange(-3, 5, newSource(1))
	require.NoError(t, err)

	vec := draw(t, u, 20000)
	for _, x := range vec {
		require.True(t, x >= -3 && x < 5, "sample %v outside [-3, 5)", x)
	}
	assert.InDelta(t, 1, mean(vec), 0.1)
	assert.InDelta(t, 64.0/12, variance(vec), 0.2)
}

func TestUniform(t *testing.T) {
	u, err := sample.NewUniform(1, newSource(2))
	require.NoError(t, err)

	x, err := u.Sample()
	require.NoError(t, err)
	assert.True(t, x >= 0 && x < 1)
}

func TestUniformRange_Invalid(t *testing.T) {
	_, err := sample.NewUniformRange(1, 1, newSource(1))
	assert.ErrorIs(t, err, sample.ErrInvalidInterval)

	_, err = sample.NewUniformRange(0, math.Inf(1), newSource(1))
	assert.ErrorIs(t, err, sample.ErrInvalidInterval)

	_, err = sample.NewUniform(1, nil)
	assert.ErrorIs(t, err, sample.ErrInvalidParameter)
}
