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

package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateScalarNaNUnequal(t *testing.T) {
	result := EvaluateScalar(math.NaN(), math.NaN(), nil)
	assert.Equal(t, Unequal, result.Outcome)
	assert.True(t, math.IsNaN(result.Diff))

	// The policy sits ahead of the evaluator, custom ones included.
	assert.Equal(t, Unequal, EvaluateScalar(math.NaN(), math.NaN(), exactOnly{}).Outcome)
}

func TestEvaluateVectorNaNPairUnequal(t *testing.T) {
	result := EvaluateVector([]float64{math.NaN()}, []float64{math.NaN()}, nil)
	assert.Equal(t, Unequal, result.Outcome)
}
