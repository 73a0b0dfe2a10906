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

	"github.com/pkg/errors"
)

// truncatedExponential samples the standard normal distribution
// truncated to [a, b] by rejection from an exponential proposal
// with rate a, shifted to start at a and truncated at b. It is
// efficient for intervals in the right tail and for narrow intervals.
func truncatedExponential(src Source, a, b float64, maxIter int) (float64, error) {
	twoASquare := 2 * a * a
	expab := math.Expm1(-a * (b - a))
	if a == 0 || expab == 0 {
		return truncatedUniform(src, a, b, maxIter)
	}

	for i := 0; i < maxIter; i++ {
		z := math.Log1p(src.Float64() * expab)
		e := -math.Log(src.Float64())
		if twoASquare*e > z*z {
			return a - z/a, nil
		}
	}

	return 0, notConverged("truncated exponential", a, b, maxIter)
}

// truncatedUniform is the limit of truncatedExponential when the
// exponential rate vanishes: a uniform proposal on [a, b] accepted
// with the ratio of the density to its maximum on the interval.
func truncatedUniform(src Source, a, b float64, maxIter int) (float64, error) {
	peak := math.Max(a, math.Min(b, 0))
	peakSquare := peak * peak

	for i := 0; i < maxIter; i++ {
		x := a + (b-a)*src.Float64()
		e := -math.Log(src.Float64())
		if 2*e > x*x-peakSquare {
			return x, nil
		}
	}

	return 0, notConverged("truncated uniform", a, b, maxIter)
}

// gaussianRejection draws standard normal values until one falls
// into [a, b]. It is used when [a, b] covers most of the density.
func gaussianRejection(src Source, a, b float64, maxIter int) (float64, error) {
	for i := 0; i < maxIter; i++ {
		r := src.NormFloat64()
		if r >= a && r <= b {
			return r, nil
		}
	}

	return 0, notConverged("gaussian rejection", a, b, maxIter)
}

func notConverged(method string, a, b float64, maxIter int) error {
	log.Warningf("%s on [%g, %g] rejected %d proposals", method, a, b, maxIter)
	return errors.Wrapf(ErrNotConverged, "%s on [%g, %g] after %d proposals", method, a, b, maxIter)
}
