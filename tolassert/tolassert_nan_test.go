//go:build !nanequality

// Copyright 2026 approx Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tolassert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotEqualNaN(t *testing.T) {
	mock := &mockTestingT{}
	assert.True(t, NotEqual(mock, math.NaN(), math.NaN()))
	assert.False(t, mock.failed)
}

func TestEqualNaNFails(t *testing.T) {
	mock := &mockTestingT{}
	assert.False(t, Equal(mock, math.NaN(), math.NaN()))
	assert.True(t, mock.failed)
}
