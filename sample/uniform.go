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

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min float64
	max float64
	src Source
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(min, max float64, src Source) (*UniformRange, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "random source is nil")
	}
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, errors.Wrapf(ErrInvalidInterval, "[%g, %g)", min, max)
	}

	return &UniformRange{
		min: min,
		max: max,
		src: src,
	}, nil
}

// NewUniform returns an instance of the UniformRange sampler on [0, max).
func NewUniform(max float64, src Source) (*UniformRange, error) {
	return NewUniformRange(0, max, src)
}

// Sample draws a value from [min, max).
func (u *UniformRange) Sample() (float64, error) {
	x := u.min + (u.max-u.min)*u.src.Float64()
	if x >= u.max {
		// rounding of the affine map
		x = math.Nextafter(u.max, u.min)
	}

	return x, nil
}
