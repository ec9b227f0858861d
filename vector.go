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

import "github.com/samber/lo"

// EvaluateVector compares expected and actual element-wise with the given
// evaluator. A nil evaluator falls back to Margin(DefaultMargin). Sequences
// of different lengths are never approximately equal; no elements are
// compared in that case.
//
// Elements of the result keep input order, so the index of a mismatch in
// the result is the index of the mismatching pair in the inputs.
func EvaluateVector(expected, actual []float64, evaluator Evaluator) VectorResult {
	if len(expected) != len(actual) {
		return VectorResult{
			Outcome:        Unequal,
			LengthMismatch: true,
			ExpectedLen:    len(expected),
			ActualLen:      len(actual),
		}
	}
	elements := make([]ScalarResult, len(expected))
	for i := range expected {
		elements[i] = EvaluateScalar(expected[i], actual[i], evaluator)
	}
	outcome := Unequal
	switch {
	case lo.EveryBy(elements, func(e ScalarResult) bool { return e.Outcome == ExactlyEqual }):
		outcome = ExactlyEqual
	case lo.EveryBy(elements, ScalarResult.Equal):
		outcome = ApproximatelyEqual
	}
	return VectorResult{
		Outcome:     outcome,
		ExpectedLen: len(expected),
		ActualLen:   len(actual),
		Elements:    elements,
	}
}

// EvaluateVectorOf compares two sequences of values that report themselves
// as float64. The length check happens before any conversion.
func EvaluateVectorOf[E, A Float64er](expected []E, actual []A, evaluator Evaluator) VectorResult {
	if len(expected) != len(actual) {
		return VectorResult{
			Outcome:        Unequal,
			LengthMismatch: true,
			ExpectedLen:    len(expected),
			ActualLen:      len(actual),
		}
	}
	return EvaluateVector(
		lo.Map(expected, func(v E, _ int) float64 { return v.Float64() }),
		lo.Map(actual, func(v A, _ int) float64 { return v.Float64() }),
		evaluator,
	)
}
