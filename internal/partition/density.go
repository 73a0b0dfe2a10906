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

package partition

import "math"

// logSqrtTwoPi is ln(sqrt(2*pi)).
const logSqrtTwoPi = 0.91893853320467274178032973640562

// Density is the standard normal density. It is evaluated with expNeg
// so that a table built on any platform is identical bit for bit.
func Density(x float64) float64 {
	return expNeg(-float64(x*x)/2 - logSqrtTwoPi)
}

// expNeg returns e**x for x <= 0. It follows the FreeBSD msun reduction
// used by the portable math.Exp, with every product rounded explicitly
// so that no multiply-add can be fused. math.Exp itself is implemented
// in assembly on several architectures and may differ in the last bit.
func expNeg(x float64) float64 {
	const (
		ln2Hi = 6.93147180369123816490e-01
		ln2Lo = 1.90821492927058770002e-10
		log2e = 1.44269504088896338700e+00

		p1 = 1.66666666666666657415e-01
		p2 = -2.77777777770155933842e-03
		p3 = 6.61375632143793436117e-05
		p4 = -1.65339022054652515390e-06
		p5 = 4.13813679705723846039e-08

		underflow = -7.45133219101941108420e+02
	)

	switch {
	case math.IsNaN(x) || x > 0:
		return math.NaN()
	case x < underflow:
		return 0
	case x == 0:
		return 1
	}

	k := int(float64(log2e*x) - 0.5)
	hi := x - float64(float64(k)*ln2Hi)
	lo := float64(float64(k) * ln2Lo)

	r := hi - lo
	t := float64(r * r)
	poly := p4 + float64(t*p5)
	poly = p3 + float64(t*poly)
	poly = p2 + float64(t*poly)
	poly = p1 + float64(t*poly)
	c := r - float64(t*poly)
	y := 1 - ((lo - float64(r*c)/(2-c)) - hi)

	return math.Ldexp(y, k)
}
