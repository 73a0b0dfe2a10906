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

import "math"

// sampleBand samples the standard normal distribution truncated to
// [a, b], xMin <= a <= xMax, using the partition. ka and kb are the
// cells of a and b, kb = cellCount when b >= xMax.
//
// A cell is chosen uniformly from [ka, kb]. Since all envelope
// rectangles and the tail envelope have the same area, proposing a
// point uniformly under the chosen envelope and accepting it when it
// lies below the density yields the truncated distribution.
func sampleBand(src Source, a, b float64, ka, kb int, maxIter int) (float64, error) {
	cells := float64(kb - ka + 1)

	for i := 0; i < maxIter; i++ {
		k := int(src.Float64()*cells) + ka

		switch {
		case k == cellCount:
			// right tail, exponential proposal anchored at xMax
			z := -math.Log(src.Float64()) / xMax
			e := -math.Log(src.Float64())
			if z*z <= 2*e && z < b-xMax {
				return xMax + z, nil
			}

		case k <= ka+1 || (k >= kb-1 && b < xMax):
			// cells that may be cut by a or b
			sim := partitionX[k] + (partitionX[k+1]-partitionX[k])*src.Float64()
			if sim < a || sim > b {
				continue
			}
			simy := partitionYu[k] * src.Float64()
			if simy < yl(k) || sim*sim+2*math.Log(simy)+logTwoPi < 0 {
				return sim, nil
			}

		default:
			u := src.Float64()
			simy := partitionYu[k] * u
			d := partitionX[k+1] - partitionX[k]
			ylk := yl(k)
			if simy < ylk {
				// below the lower envelope, no density evaluation needed
				return partitionX[k] + u*d*partitionYu[k]/ylk, nil
			}
			sim := partitionX[k] + d*src.Float64()
			if sim*sim+2*math.Log(simy)+logTwoPi < 0 {
				return sim, nil
			}
		}
	}

	return 0, notConverged("partition band", a, b, maxIter)
}
