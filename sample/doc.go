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

// Package sample includes samplers for sampling random values
// from the normal (Gaussian) distribution truncated to an interval.
//
// The TruncatedNormal sampler implements an extension of Chopin's
// algorithm ("Fast simulation of truncated Gaussian distributions",
// Stat Comput (2011) 21:275-288). Its expected cost per sample is
// constant no matter how narrow the interval is or how far in the
// tail it lies. It relies on a precomputed partition of the standard
// normal density which is compiled into the package and shared
// read-only by all samplers.
//
// Random numbers are drawn from a caller supplied Source, for
// instance *rand.Rand from math/rand or golang.org/x/exp/rand.
// A Source is not safe for concurrent use, so each goroutine
// should sample with its own TruncatedNormal and Source.
package sample
