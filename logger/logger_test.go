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

package logger

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		log := NewLogger("DEBUG", "testModule")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.DEBUG))
	})

	t.Run("lower case", func(t *testing.T) {
		log := NewLogger("warning", "testModule")
		assert.True(t, log.IsEnabledFor(logging.WARNING))
		assert.False(t, log.IsEnabledFor(logging.INFO))
	})

	t.Run("invalid log level", func(t *testing.T) {
		log := NewLogger("INVALID", "testModule")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.INFO))
		assert.False(t, log.IsEnabledFor(logging.DEBUG))
	})

	t.Run("applies to other modules", func(t *testing.T) {
		NewLogger("ERROR", "testModule")
		assert.False(t, logging.MustGetLogger("otherModule").IsEnabledFor(logging.WARNING))
	})
}
