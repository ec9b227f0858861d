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

package approx

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// celsius is a numeric-like type used across the engine tests.
type celsius float64

func (c celsius) Float64() float64 {
	return float64(c)
}

func TestFloat64sInts(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, Float64s([]int{1, 2, 3}))
	assert.Equal(t, []float64{-4, 0, 4}, Float64s([]int32{-4, 0, 4}))
}

func TestFloat64sFloat32(t *testing.T) {
	assert.Equal(t, []float64{0.5, -0.25, 2}, Float64s([]float32{0.5, -0.25, 2}))

	// Widened float32 results stay comparable under a relative tolerance.
	evaluator, err := Multiplier(1e-6)
	assert.NoError(t, err)
	actual := Float64s([]float32{math32.Sqrt(2) * math32.Sqrt(2), math32.Exp(0)})
	result := EvaluateVector([]float64{2, 1}, actual, evaluator)
	assert.True(t, result.Equal())
}

func TestFloat64sEmpty(t *testing.T) {
	assert.Empty(t, Float64s([]float64(nil)))
}
