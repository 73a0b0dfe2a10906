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
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInterval is returned when the lower truncation bound
	// is not strictly smaller than the upper one.
	ErrInvalidInterval = errors.New("truncation interval is empty")
	// ErrInvalidParameter is returned for NaN bounds, a non-finite mean,
	// a non-positive or non-finite standard deviation, or a missing source.
	ErrInvalidParameter = errors.New("distribution parameter is not of the proper form")
	// ErrNotConverged is returned when a rejection loop exceeds
	// the maximal number of proposals.
	ErrNotConverged = errors.New("rejection sampling did not converge")
)
