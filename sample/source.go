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
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/pkg/errors"
)

// Source provides the random numbers consumed by the samplers.
// Float64 must return values uniformly distributed in [0, 1) and
// NormFloat64 standard normal values. Both *rand.Rand types from
// math/rand and golang.org/x/exp/rand satisfy it.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

// Sampler samples random values from a probability distribution.
type Sampler interface {
	Sample() (float64, error)
}

// cryptoSource is a math/rand source reading from crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by the operating system's
// cryptographically secure random generator. It cannot be seeded.
func NewCryptoSource() *mrand.Rand {
	return mrand.New(cryptoSource{})
}

func (cryptoSource) Uint64() uint64 {
	var randBytes [8]byte
	if _, err := rand.Read(randBytes[:]); err != nil {
		panic(errors.Wrap(err, "error while reading system randomness"))
	}

	return binary.LittleEndian.Uint64(randBytes[:])
}

func (s cryptoSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (cryptoSource) Seed(int64) {}
