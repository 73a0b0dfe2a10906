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

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// millsThreshold is where the upper tail switches from Erfc to the
	// Mills ratio; Erfc underflows shortly after 38 standard deviations.
	millsThreshold = 30
	millsTerms     = 24
	// narrowWidth bounds w*(1+|m|) below which an interval of width w
	// around m is integrated by the corrected midpoint rule.
	narrowWidth = 1e-4
)

// logUpperTail returns ln P(Z > z) for a standard normal Z.
func logUpperTail(z float64) float64 {
	switch {
	case z < 0:
		return math.Log1p(-distuv.UnitNormal.CDF(z))
	case z < millsThreshold:
		return math.Log(distuv.UnitNormal.CDF(-z))
	default:
		return distuv.UnitNormal.LogProb(z) + math.Log(millsRatio(z))
	}
}

// millsRatio evaluates P(Z > z) / phi(z) by its continued fraction
// 1/(z+1/(z+2/(z+3/(z+...)))), which converges quickly for large z.
func millsRatio(z float64) float64 {
	f := z
	for k := millsTerms; k > 0; k-- {
		f = z + float64(k)/f
	}

	return 1 / f
}

// logNormalMass returns ln P(u < Z < v) for a standard normal Z and
// u < v. Intervals on one side of 0 are computed from their tails so
// that the result stays finite wherever the interval lies.
func logNormalMass(u, v float64) float64 {
	w, m := v-u, u/2+v/2
	if w*(1+math.Abs(m)) < narrowWidth {
		return distuv.UnitNormal.LogProb(m) + math.Log(w) + math.Log1p(w*w*(m*m-1)/24)
	}

	switch {
	case v <= 0:
		return logNormalMass(-v, -u)
	case u >= 0:
		lu := logUpperTail(u)
		if math.IsInf(v, 1) {
			return lu
		}
		return lu + math.Log(-math.Expm1(logUpperTail(v)-lu))
	default:
		return math.Log(0.5 * (math.Erf(v/math.Sqrt2) - math.Erf(u/math.Sqrt2)))
	}
}
