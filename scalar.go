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

import "math"

// defaultScalarEvaluator backs a nil evaluator argument.
var defaultScalarEvaluator Evaluator = marginEvaluator{margin: DefaultMargin}

// EvaluateScalar compares expected and actual with the given evaluator. A
// nil evaluator falls back to Margin(DefaultMargin).
//
// NaN and infinite operands are decided here and never reach the evaluator:
// a NaN on either side is Unequal (NaN against NaN is ExactlyEqual when
// built with the nanequality tag), and an infinity only equals the same
// infinity.
func EvaluateScalar(expected, actual float64, evaluator Evaluator) ScalarResult {
	if evaluator == nil {
		evaluator = defaultScalarEvaluator
	}
	if expected == actual {
		return ScalarResult{Outcome: ExactlyEqual, Evaluator: evaluator}
	}
	if math.IsNaN(expected) || math.IsNaN(actual) {
		outcome := Unequal
		if nanEquality && math.IsNaN(expected) && math.IsNaN(actual) {
			outcome = ExactlyEqual
		}
		return ScalarResult{Outcome: outcome, Diff: math.NaN(), Evaluator: evaluator}
	}
	diff := math.Abs(actual - expected)
	if math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		return ScalarResult{Outcome: Unequal, Diff: diff, Evaluator: evaluator}
	}
	if evaluator.Evaluate(expected, actual) {
		return ScalarResult{Outcome: ApproximatelyEqual, Diff: diff, Evaluator: evaluator}
	}
	return ScalarResult{Outcome: Unequal, Diff: diff, Evaluator: evaluator}
}

// EvaluateScalarOf compares two values that report themselves as float64.
func EvaluateScalarOf[E, A Float64er](expected E, actual A, evaluator Evaluator) ScalarResult {
	return EvaluateScalar(expected.Float64(), actual.Float64(), evaluator)
}
