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
	"math/rand"
	"sort"
	"testing"

	"github.com/fentec-project/rtnorm/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// ksAlpha is the significance level of the Kolmogorov-Smirnov checks.
const ksAlpha = 1e-4

// paramBounds bounds the sample mean and variance.
type paramBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

func newSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func draw(t *testing.T, s sample.Sampler, n int) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		var err error
		vec[i], err = s.Sample()
		require.NoError(t, err)
	}

	return vec
}

func mean(vec []float64) float64 {
	return stat.Mean(vec, nil)
}

func variance(vec []float64) float64 {
	return stat.PopVariance(vec, nil)
}

// ksCritical returns the asymptotic critical value of the
// Kolmogorov-Smirnov statistic for samples of sizes n and m.
func ksCritical(n, m int) float64 {
	c := math.Sqrt(-0.5 * math.Log(ksAlpha/2))
	return c * math.Sqrt(float64(n+m)/float64(n*m))
}

// ksStatistic returns the one-sample Kolmogorov-Smirnov statistic
// of vec against cdf.
func ksStatistic(vec []float64, cdf func(float64) float64) float64 {
	sorted := append([]float64(nil), vec...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	d := 0.0
	for i, x := range sorted {
		f := cdf(x)
		d = math.Max(d, math.Max(f-float64(i)/n, float64(i+1)/n-f))
	}

	return d
}

// assertSameDistribution runs the two-sample Kolmogorov-Smirnov test.
func assertSameDistribution(t *testing.T, x, y []float64) {
	xs := append([]float64(nil), x...)
	ys := append([]float64(nil), y...)
	sort.Float64s(xs)
	sort.Float64s(ys)

	d := stat.KolmogorovSmirnov(xs, nil, ys, nil)
	assert.Less(t, d, ksCritical(len(xs), len(ys)), "samples do not come from the same distribution")
}

func testTruncatedSampler(t *testing.T, s *sample.TruncatedNormal, n int, expect paramBounds) {
	vec := draw(t, s, n)
	a, b := s.Bounds()
	for _, v := range vec {
		assert.True(t, v >= a && v <= b, "sample %v is outside [%v, %v]", v, a, b)
	}

	d := ksStatistic(vec, s.CDF)
	// the critical value for a known distribution is the two-sample
	// one with an infinite second sample
	crit := math.Sqrt(-0.5*math.Log(ksAlpha/2)) / math.Sqrt(float64(n))
	assert.Less(t, d, crit, "empirical CDF deviates from the truncated normal CDF")

	me := mean(vec)
	v := variance(vec)
	assert.True(t, me > expect.meanLow, "mean value of the truncated distribution is too small: %v", me)
	assert.True(t, me < expect.meanHigh, "mean value of the truncated distribution is too big: %v", me)
	assert.True(t, v > expect.varLow, "variance of the truncated distribution is too small: %v", v)
	assert.True(t, v < expect.varHigh, "variance of the truncated distribution is too big: %v", v)
}
