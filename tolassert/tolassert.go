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

// Package tolassert reports approximate-equality verdicts as test failures.
// Each assertion runs the approx engines and fails the test through testify
// when the verdict contradicts the asserted polarity. Without an explicit
// evaluator, approx.Default is applied.
package tolassert

import (
	"fmt"

	"github.com/approx-go/approx"
	"github.com/approx-go/approx/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type tHelper interface {
	Helper()
}

func pick(evaluator []approx.Evaluator) approx.Evaluator {
	if len(evaluator) > 0 {
		return evaluator[0]
	}
	return approx.Default
}

// Equal asserts that actual is approximately equal to expected.
func Equal(t assert.TestingT, expected, actual float64, evaluator ...approx.Evaluator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	result := approx.EvaluateScalar(expected, actual, pick(evaluator))
	if result.Equal() {
		return true
	}
	log.Logger().Debug("scalar comparison failed",
		zap.Float64("expected", expected),
		zap.Float64("actual", actual),
		zap.Float64("diff", result.Diff),
		zap.Any("evaluator", result.Evaluator))
	return assert.Fail(t, fmt.Sprintf(
		"failed to verify approximate equality: expected=%v, actual=%v, diff=%v, evaluator=%v",
		expected, actual, result.Diff, result.Evaluator))
}

// NotEqual asserts that actual is not approximately equal to expected.
func NotEqual(t assert.TestingT, expected, actual float64, evaluator ...approx.Evaluator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	result := approx.EvaluateScalar(expected, actual, pick(evaluator))
	if !result.Equal() {
		return true
	}
	log.Logger().Debug("scalar comparison unexpectedly passed",
		zap.Float64("expected", expected),
		zap.Float64("actual", actual),
		zap.Any("evaluator", result.Evaluator))
	return assert.Fail(t, fmt.Sprintf(
		"failed to verify approximate inequality: expected=%v, actual=%v, evaluator=%v",
		expected, actual, result.Evaluator))
}

// EqualVector asserts that actual is element-wise approximately equal to
// expected.
func EqualVector(t assert.TestingT, expected, actual []float64, evaluator ...approx.Evaluator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	result := approx.EvaluateVector(expected, actual, pick(evaluator))
	if result.Equal() {
		return true
	}
	if result.LengthMismatch {
		log.Logger().Debug("vector comparison failed",
			zap.Int("expected_length", result.ExpectedLen),
			zap.Int("actual_length", result.ActualLen))
		return assert.Fail(t, fmt.Sprintf(
			"failed to verify approximate equality for vectors: expected length %d differs from actual length %d",
			result.ExpectedLen, result.ActualLen))
	}
	index, elem, _ := result.FirstUnequal()
	log.Logger().Debug("vector comparison failed",
		zap.Int("index", index),
		zap.Float64("expected", expected[index]),
		zap.Float64("actual", actual[index]),
		zap.Float64("diff", elem.Diff),
		zap.Any("evaluator", elem.Evaluator))
	return assert.Fail(t, fmt.Sprintf(
		"failed to verify approximate equality for vectors: at index %d expected=%v, actual=%v, diff=%v, evaluator=%v",
		index, expected[index], actual[index], elem.Diff, elem.Evaluator))
}

// NotEqualVector asserts that actual is not element-wise approximately equal
// to expected. Sequences of different lengths satisfy the assertion.
func NotEqualVector(t assert.TestingT, expected, actual []float64, evaluator ...approx.Evaluator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	result := approx.EvaluateVector(expected, actual, pick(evaluator))
	if !result.Equal() {
		return true
	}
	log.Logger().Debug("vector comparison unexpectedly passed",
		zap.Float64s("expected", expected),
		zap.Float64s("actual", actual))
	return assert.Fail(t, fmt.Sprintf(
		"failed to verify approximate inequality for vectors: expected=%v, actual=%v",
		expected, actual))
}
