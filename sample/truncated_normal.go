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

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

var log = logging.MustGetLogger("rtnorm/sample")

// DefaultMaxIterations bounds the number of proposals a single
// call to Sample may reject before it gives up.
const DefaultMaxIterations = 1 << 20

// strategy is the rejection procedure selected for an interval.
type strategy int

const (
	// strategyBand uses the partition of the density.
	strategyBand strategy = iota
	// strategyNarrow uses the exponential proposal on a band too
	// narrow for the partition to pay off.
	strategyNarrow
	// strategyRightTail uses the exponential proposal beyond xMax.
	strategyRightTail
	// strategyLeftTail rejects plain normal draws.
	strategyLeftTail
)

func (s strategy) String() string {
	switch s {
	case strategyBand:
		return "band"
	case strategyNarrow:
		return "narrow"
	case strategyRightTail:
		return "right tail"
	case strategyLeftTail:
		return "left tail"
	default:
		return "unknown"
	}
}

// TruncatedNormal samples random values from the normal (Gaussian)
// distribution with mean mu and standard deviation sigma, truncated
// to the interval [a, b].
type TruncatedNormal struct {
	// Truncation bounds
	a, b float64
	// Mean and standard deviation
	mu, sigma float64
	// Standardized bounds
	lo, hi float64
	// Precomputed sampling plan in the standardized space, reflected
	// so that |stdA| <= |stdB|
	reflect    bool
	stdA, stdB float64
	strategy   strategy
	ka, kb     int
	// Log of the probability mass of [lo, hi] under the standard normal
	logMass float64

	src     Source
	maxIter int
}

// NewTruncatedNormal returns an instance of TruncatedNormal sampler.
// It requires a < b and sigma > 0, and the bounds must stay finite
// after standardization unless they are infinite already. The sampling strategy is chosen
// when this function is called, so that Sample merely runs the
// selected rejection loop.
func NewTruncatedNormal(a, b, mu, sigma float64, src Source) (*TruncatedNormal, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "random source is nil")
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return nil, errors.Wrapf(ErrInvalidParameter, "bounds [%g, %g]", a, b)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "mean %g", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "standard deviation %g", sigma)
	}

	lo := (a - mu) / sigma
	hi := (b - mu) / sigma
	if (math.IsInf(lo, 0) && !math.IsInf(a, 0)) || (math.IsInf(hi, 0) && !math.IsInf(b, 0)) {
		return nil, errors.Wrapf(ErrInvalidParameter, "[%g, %g] overflows when standardized by N(%g, %g)", a, b, mu, sigma)
	}
	if lo >= hi {
		return nil, errors.Wrapf(ErrInvalidInterval, "[%g, %g] standardized to [%g, %g]", a, b, lo, hi)
	}

	t := &TruncatedNormal{
		a:       a,
		b:       b,
		mu:      mu,
		sigma:   sigma,
		lo:      lo,
		hi:      hi,
		src:     src,
		maxIter: DefaultMaxIterations,
	}
	t.plan()
	t.logMass = logNormalMass(lo, hi)

	return t, nil
}

// TruncatedNormalSample draws a single value from the normal
// distribution with mean mu and standard deviation sigma, truncated
// to [a, b], using random numbers from src.
func TruncatedNormalSample(src Source, a, b, mu, sigma float64) (float64, error) {
	t, err := NewTruncatedNormal(a, b, mu, sigma, src)
	if err != nil {
		return 0, err
	}

	return t.Sample()
}

// plan selects the rejection procedure. Intervals with |lo| > |hi|
// are mirrored, so only the case |a| <= |b| has to be handled.
func (t *TruncatedNormal) plan() {
	a, b := t.lo, t.hi
	if math.Abs(a) > math.Abs(b) {
		a, b = -b, -a
		t.reflect = true
	}
	t.stdA, t.stdB = a, b

	switch {
	case a > xMax:
		t.strategy = strategyRightTail
	case a < xMin:
		t.strategy = strategyLeftTail
	default:
		t.ka = cellOf(a)
		if b >= xMax {
			t.kb = cellCount
		} else {
			t.kb = cellOf(b)
		}
		if t.kb-t.ka < minBandCells {
			t.strategy = strategyNarrow
		} else {
			t.strategy = strategyBand
		}
	}
}

// SetMaxIterations sets the number of proposals after which Sample
// returns ErrNotConverged. Values below 1 restore the default.
func (t *TruncatedNormal) SetMaxIterations(n int) {
	if n < 1 {
		n = DefaultMaxIterations
	}
	t.maxIter = n
}

// Sample samples a value from the truncated normal distribution.
// The result always lies in [a, b].
func (t *TruncatedNormal) Sample() (float64, error) {
	var r float64
	var err error

	switch t.strategy {
	case strategyRightTail, strategyNarrow:
		r, err = truncatedExponential(t.src, t.stdA, t.stdB, t.maxIter)
	case strategyLeftTail:
		r, err = gaussianRejection(t.src, t.stdA, t.stdB, t.maxIter)
	default:
		r, err = sampleBand(t.src, t.stdA, t.stdB, t.ka, t.kb, t.maxIter)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "error while sampling N(%g, %g) on [%g, %g]", t.mu, t.sigma, t.a, t.b)
	}

	if t.reflect {
		r = -r
	}

	return math.Max(t.a, math.Min(t.b, r*t.sigma+t.mu)), nil
}

// Bounds returns the truncation interval.
func (t *TruncatedNormal) Bounds() (float64, float64) {
	return t.a, t.b
}

// Prob computes the value of the probability density function at x.
func (t *TruncatedNormal) Prob(x float64) float64 {
	return math.Exp(t.LogProb(x))
}

// LogProb computes the natural logarithm of the value of the
// probability density function at x. It stays finite for intervals
// far in the tails, where the density itself may overflow.
func (t *TruncatedNormal) LogProb(x float64) float64 {
	if x < t.a || x > t.b {
		return math.Inf(-1)
	}

	return distuv.UnitNormal.LogProb((x-t.mu)/t.sigma) - math.Log(t.sigma) - t.logMass
}

// CDF computes the value of the cumulative distribution function at x.
func (t *TruncatedNormal) CDF(x float64) float64 {
	z := (x - t.mu) / t.sigma
	switch {
	case z <= t.lo:
		return 0
	case z >= t.hi:
		return 1
	default:
		return math.Exp(logNormalMass(t.lo, z) - t.logMass)
	}
}

// Survival returns the survival function (complementary CDF) at x.
func (t *TruncatedNormal) Survival(x float64) float64 {
	z := (x - t.mu) / t.sigma
	switch {
	case z <= t.lo:
		return 1
	case z >= t.hi:
		return 0
	default:
		return math.Exp(logNormalMass(z, t.hi) - t.logMass)
	}
}
