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
	"fmt"
	"math"
	"testing"

	"github.com/fentec-project/rtnorm/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

var inf = math.Inf(1)

func TestTruncatedNormal(t *testing.T) {
	var tests = []struct {
		name            string
		a, b, mu, sigma float64
		n               int
		expect          paramBounds
	}{
		{
			name: "Scaled", a: 1, b: 9, mu: 2, sigma: 3, n: 100000,
			expect: paramBounds{meanLow: 3.662, meanHigh: 3.733, varLow: 3.214, varHigh: 3.603},
		},
		{
			name: "RightTail", a: 5, b: 8, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: 5.178, meanHigh: 5.195, varLow: 0.0285, varHigh: 0.0369},
		},
		{
			name: "ReflectedTail", a: -8, b: -5, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: -5.195, meanHigh: -5.178, varLow: 0.0285, varHigh: 0.0369},
		},
		{
			name: "UnboundedTail", a: -inf, b: -4, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: -4.235, meanHigh: -4.216, varLow: 0.0407, varHigh: 0.0527},
		},
		{
			name: "NarrowBand", a: 0.001, b: 0.002, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: 0.001487, meanHigh: 0.001513, varLow: 7.27e-8, varHigh: 9.4e-8},
		},
		{
			name: "NarrowAroundZero", a: -0.0005, b: 0.0005, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: -1.23e-5, meanHigh: 1.23e-5, varLow: 7.27e-8, varHigh: 9.4e-8},
		},
		{
			name: "NarrowFromZero", a: 0, b: 0.001, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: 0.000487, meanHigh: 0.000513, varLow: 7.27e-8, varHigh: 9.4e-8},
		},
		{
			name: "CentralBand", a: -1, b: 1, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: -0.023, meanHigh: 0.023, varLow: 0.254, varHigh: 0.329},
		},
		{
			name: "ReflectedBand", a: -3, b: -2.5, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: -2.701, meanHigh: -2.689, varLow: 0.0164, varHigh: 0.0213},
		},
		{
			name: "BandWithTailCell", a: 2.9, b: inf, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: 3.178, meanHigh: 3.202, varLow: 0.0644, varHigh: 0.0832},
		},
		{
			name: "LeftTail", a: -2.5, b: 3, mu: 0, sigma: 1, n: 20000,
			expect: paramBounds{meanLow: -0.028, meanHigh: 0.0544, varLow: 0.822, varHigh: 1.063},
		},
		{
			name: "LeftTailScaled", a: -2, b: 12, mu: 1, sigma: 0.5, n: 20000,
			expect: paramBounds{meanLow: 0.978, meanHigh: 1.022, varLow: 0.218, varHigh: 0.282},
		},
		{
			name: "Untruncated", a: -inf, b: inf, mu: 10, sigma: 2, n: 20000,
			expect: paramBounds{meanLow: 9.915, meanHigh: 10.085, varLow: 3.49, varHigh: 4.51},
		},
	}

	for i, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := sample.NewTruncatedNormal(test.a, test.b, test.mu, test.sigma, newSource(int64(i+1)))
			require.NoError(t, err)
			testTruncatedSampler(t, s, test.n, test.expect)
		})
	}
}

func TestTruncatedNormal_InvalidInterval(t *testing.T) {
	var tests = []struct {
		a, b, mu, sigma float64
	}{
		{a: 1, b: 1, mu: 0, sigma: 1},
		{a: 2, b: 1, mu: 0, sigma: 1},
		{a: 9, b: 1, mu: 2, sigma: 3},
		{a: inf, b: inf, mu: 0, sigma: 1},
		{a: -inf, b: -inf, mu: 0, sigma: 1},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("[%v,%v]", test.a, test.b), func(t *testing.T) {
			_, err := sample.NewTruncatedNormal(test.a, test.b, test.mu, test.sigma, newSource(1))
			assert.ErrorIs(t, err, sample.ErrInvalidInterval)

			_, err = sample.TruncatedNormalSample(newSource(1), test.a, test.b, test.mu, test.sigma)
			assert.ErrorIs(t, err, sample.ErrInvalidInterval)
		})
	}
}

func TestTruncatedNormal_InvalidParameter(t *testing.T) {
	nan := math.NaN()
	var tests = []struct {
		name            string
		a, b, mu, sigma float64
	}{
		{name: "NaN lower bound", a: nan, b: 1, mu: 0, sigma: 1},
		{name: "NaN upper bound", a: 0, b: nan, mu: 0, sigma: 1},
		{name: "NaN mean", a: 0, b: 1, mu: nan, sigma: 1},
		{name: "infinite mean", a: 0, b: 1, mu: inf, sigma: 1},
		{name: "zero sigma", a: 0, b: 1, mu: 0, sigma: 0},
		{name: "negative sigma", a: 0, b: 1, mu: 0, sigma: -1},
		{name: "NaN sigma", a: 0, b: 1, mu: 0, sigma: nan},
		{name: "infinite sigma", a: 0, b: 1, mu: 0, sigma: inf},
		{name: "standardized bounds overflow", a: 1e300, b: 2e300, mu: 0, sigma: 1e-10},
		{name: "standardized upper bound overflows", a: 0, b: 1e300, mu: -1e300, sigma: 0.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := sample.NewTruncatedNormal(test.a, test.b, test.mu, test.sigma, newSource(1))
			assert.ErrorIs(t, err, sample.ErrInvalidParameter)
		})
	}

	_, err := sample.NewTruncatedNormal(0, 1, 0, 1, nil)
	assert.ErrorIs(t, err, sample.ErrInvalidParameter)
}

func TestTruncatedNormal_Bounds(t *testing.T) {
	src := newSource(42)
	intervals := [][2]float64{
		{-10, -9.99}, {-3, 3}, {-2.0086, -2.0085}, {3.4867, 3.4868}, {3.48, 3.49},
		{-0.3, 0.3}, {0.2, 0.20001}, {-1e-9, 1e-9}, {0, 1e-300}, {6, 40}, {-40, -39.9},
		{-2.1, 2.1}, {-1.9, 100}, {1, 1 + 1e-12},
	}

	for _, iv := range intervals {
		for _, params := range [][2]float64{{0, 1}, {2, 3}, {-5, 0.01}} {
			a, b := iv[0]*params[1]+params[0], iv[1]*params[1]+params[0]
			s, err := sample.NewTruncatedNormal(a, b, params[0], params[1], src)
			if err != nil {
				// the interval may collapse after rescaling
				assert.ErrorIs(t, err, sample.ErrInvalidInterval)
				continue
			}
			for i := 0; i < 500; i++ {
				v, err := s.Sample()
				require.NoError(t, err)
				assert.True(t, v >= a && v <= b, "sample %v is outside [%v, %v]", v, a, b)
			}
		}
	}
}

func TestTruncatedNormal_ScalingLaw(t *testing.T) {
	const n = 20000
	a, b, mu, sigma := -1.0, 4.0, 0.5, 1.5

	scaled, err := sample.NewTruncatedNormal(a, b, mu, sigma, newSource(7))
	require.NoError(t, err)
	x := draw(t, scaled, n)

	standard, err := sample.NewTruncatedNormal((a-mu)/sigma, (b-mu)/sigma, 0, 1, newSource(8))
	require.NoError(t, err)
	y := draw(t, standard, n)
	for i := range y {
		y[i] = mu + sigma*y[i]
	}

	assertSameDistribution(t, x, y)
}

func TestTruncatedNormal_ReflectionLaw(t *testing.T) {
	const n = 20000
	var tests = [][2]float64{{-0.5, 2}, {1, 1.01}, {4, 6}, {-2.5, 3}}

	for _, test := range tests {
		t.Run(fmt.Sprintf("[%v,%v]", test[0], test[1]), func(t *testing.T) {
			direct, err := sample.NewTruncatedNormal(test[0], test[1], 0, 1, newSource(9))
			require.NoError(t, err)
			x := draw(t, direct, n)

			mirrored, err := sample.NewTruncatedNormal(-test[1], -test[0], 0, 1, newSource(10))
			require.NoError(t, err)
			y := draw(t, mirrored, n)
			for i := range y {
				y[i] = -y[i]
			}

			assertSameDistribution(t, x, y)
		})
	}
}

func TestTruncatedNormal_MaxIterations(t *testing.T) {
	// a source whose normal draws never land in the interval
	src := &constSource{uniform: 0.5, normal: 50}
	s, err := sample.NewTruncatedNormal(-2.5, 3, 0, 1, src)
	require.NoError(t, err)

	s.SetMaxIterations(10)
	_, err = s.Sample()
	assert.ErrorIs(t, err, sample.ErrNotConverged)
	assert.Equal(t, 10, src.normals)

	s.SetMaxIterations(0)
	src.normal = 0.25
	v, err := s.Sample()
	assert.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

func TestTruncatedNormal_Distribution(t *testing.T) {
	var tests = []struct {
		a, b, mu, sigma float64
	}{
		{a: 1, b: 9, mu: 2, sigma: 3},
		{a: 5, b: 8, mu: 0, sigma: 1},
		{a: -8, b: -5, mu: 0, sigma: 1},
		{a: -0.5, b: 0.25, mu: 0.1, sigma: 0.2},
		{a: 8, b: 9, mu: 0, sigma: 1},
		{a: 26, b: 28, mu: 10, sigma: 2},
		{a: 12, b: 13, mu: 0, sigma: 1},
		{a: 40, b: 41, mu: 0, sigma: 1},
		{a: -41, b: -40, mu: 0, sigma: 1},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("[%v,%v]", test.a, test.b), func(t *testing.T) {
			s, err := sample.NewTruncatedNormal(test.a, test.b, test.mu, test.sigma, newSource(1))
			require.NoError(t, err)

			assert.Equal(t, 0.0, s.CDF(test.a))
			assert.Equal(t, 1.0, s.CDF(test.b))
			assert.Equal(t, 1.0, s.Survival(test.a))
			assert.Equal(t, 0.0, s.Survival(test.b))
			assert.Equal(t, 0.0, s.Prob(test.a-1))
			assert.True(t, math.IsInf(s.LogProb(test.b+1), -1))

			total := quad.Fixed(s.Prob, test.a, test.b, 200, nil, 0)
			assert.InDelta(t, 1, total, 1e-9)

			prev := 0.0
			for i := 1; i < 100; i++ {
				x := test.a + (test.b-test.a)*float64(i)/100
				c := s.CDF(x)
				assert.True(t, c >= prev, "CDF is not monotone at %v", x)
				assert.InDelta(t, 1, c+s.Survival(x), 1e-9)
				assert.InDelta(t, math.Log(s.Prob(x)), s.LogProb(x), 1e-9)
				prev = c
			}
		})
	}
}

func TestTruncatedNormal_TailDensity(t *testing.T) {
	var tests = []struct {
		a, b, x       float64
		prob, cdf     float64
		logProbFinite bool
	}{
		{a: 8, b: 9, x: 8.1, prob: 3.631624468775507, cdf: 0.5583754014201238},
		{a: 8, b: 9, x: 8.5, prob: 0.13129350841351908, cdf: 0.984940628616829},
		{a: 12, b: 13, x: 12.05, prob: 6.622599137053916, cdf: 0.4541195357407332},
		{a: 40, b: 41, x: 40.02, prob: 17.98078127504231, cdf: 0.5509851204376865},
		{a: 40, b: 41, x: 40.1, prob: 0.7294266098409564, cdf: 0.9818211014256792},
		{a: -9, b: -8, x: -8.1, prob: 3.631624468775507, cdf: 1 - 0.5583754014201238},
	}

	for _, test := range tests {
		s, err := sample.NewTruncatedNormal(test.a, test.b, 0, 1, newSource(1))
		require.NoError(t, err)

		assert.InEpsilon(t, test.prob, s.Prob(test.x), 1e-9, "Prob(%v) on [%v, %v]", test.x, test.a, test.b)
		assert.InDelta(t, math.Log(test.prob), s.LogProb(test.x), 1e-9)
		assert.InEpsilon(t, test.cdf, s.CDF(test.x), 1e-9, "CDF(%v) on [%v, %v]", test.x, test.a, test.b)
		assert.InEpsilon(t, 1-test.cdf, s.Survival(test.x), 1e-8, "Survival(%v) on [%v, %v]", test.x, test.a, test.b)
	}
}

func TestTruncatedNormal_TailDensityAtSamples(t *testing.T) {
	for _, a := range []float64{8, 8.5, 9, 12, 30, 37, 39, 40, 100, 1000} {
		s, err := sample.NewTruncatedNormal(a, a+1, 0, 1, newSource(int64(a)))
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			x, err := s.Sample()
			require.NoError(t, err)

			for _, v := range []float64{s.Prob(x), s.LogProb(x), s.CDF(x), s.Survival(x)} {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite value at %v on [%v, %v]", x, a, a+1)
			}
			assert.True(t, s.Prob(x) > 0)
			assert.InDelta(t, 1, s.CDF(x)+s.Survival(x), 1e-9)
		}
	}

	s, err := sample.NewTruncatedNormal(35, math.Inf(1), 0, 1, newSource(1))
	require.NoError(t, err)
	// P(Z > 35.1 | Z > 35) is close to exp(-35*0.1-0.1*0.1/2) for large thresholds
	assert.InEpsilon(t, math.Exp(-3.505)*35/35.1, s.Survival(35.1), 1e-3)
}

func TestTruncatedNormal_NarrowDensity(t *testing.T) {
	for _, iv := range [][2]float64{{1, 1 + 1e-12}, {9, 9 + 1e-11}, {-1e-10, 1e-10}, {45, 45 + 1e-9}} {
		s, err := sample.NewTruncatedNormal(iv[0], iv[1], 0, 1, newSource(1))
		require.NoError(t, err)

		mid := iv[0]/2 + iv[1]/2
		assert.InEpsilon(t, 1, s.Prob(mid)*(iv[1]-iv[0]), 1e-6, "interval %v", iv)
		assert.InDelta(t, 0.5, s.CDF(mid), 1e-3, "interval %v", iv)
	}
}

func TestCryptoSource(t *testing.T) {
	src := sample.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		u := src.Float64()
		assert.True(t, u >= 0 && u < 1)
	}

	v, err := sample.TruncatedNormalSample(src, 0.5, 0.75, 0, 1)
	require.NoError(t, err)
	assert.True(t, v >= 0.5 && v <= 0.75)
}

// constSource returns fixed values and counts the normal draws.
type constSource struct {
	uniform, normal float64
	normals         int
}

func (c *constSource) Float64() float64 {
	return c.uniform
}

func (c *constSource) NormFloat64() float64 {
	c.normals++
	return c.normal
}
