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

// Package data holds batches of sampled values and the summary
// statistics used to inspect them.
package data

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fentec-project/rtnorm/sample"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// CheckBound checks whether all vector elements lie in [lo, hi].
// It returns error if at least one element is outside the interval.
func (v Vector) CheckBound(lo, hi float64) error {
	for i, c := range v {
		if !(c >= lo && c <= hi) {
			return fmt.Errorf("coordinate %d = %v is outside [%v, %v]", i, c, lo, hi)
		}
	}

	return nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Mean returns the sample mean of the elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the elements.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// Min returns the smallest element.
func (v Vector) Min() float64 {
	return floats.Min(v)
}

// Max returns the largest element.
func (v Vector) Max() float64 {
	return floats.Max(v)
}

// Sorted returns a sorted copy of v.
func (v Vector) Sorted() Vector {
	res := v.Copy()
	sort.Float64s(res)

	return res
}

// Quantile returns the empirical p-quantile of the elements.
func (v Vector) Quantile(p float64) float64 {
	return stat.Quantile(p, stat.Empirical, v.Sorted(), nil)
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, vi := range v {
		parts[i] = strconv.FormatFloat(vi, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
