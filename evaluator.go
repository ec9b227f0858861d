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
	"fmt"
	"math"

	"github.com/juju/errors"
)

const (
	// DefaultMargin is the absolute tolerance applied by the scalar and
	// vector engines when no evaluator is supplied.
	DefaultMargin = 1e-4
	// DefaultMultiplier is the relative tolerance applied by Default.
	DefaultMultiplier = 1e-6
)

// Evaluator decides whether two floating-point values are approximately
// equal. Implementations must be pure: no side effects and the same verdict
// for the same pair of operands. The engines never pass NaN or infinite
// operands to an Evaluator.
type Evaluator interface {
	Evaluate(expected, actual float64) bool
}

// Default is the evaluator the tolassert package uses when none is given:
// ZeroMarginOrMultiplier(DefaultMargin, DefaultMultiplier).
var Default Evaluator = zeroMarginOrMultiplierEvaluator{
	margin:     DefaultMargin,
	multiplier: DefaultMultiplier,
}

type marginEvaluator struct {
	margin float64
}

// Both ends of the range around expected are inclusive.
func (e marginEvaluator) Evaluate(expected, actual float64) bool {
	return actual >= expected-e.margin && actual <= expected+e.margin
}

func (e marginEvaluator) String() string {
	return fmt.Sprintf("margin(%v)", e.margin)
}

type multiplierEvaluator struct {
	multiplier float64
}

func (e multiplierEvaluator) Evaluate(expected, actual float64) bool {
	scale := math.Max(math.Abs(expected), math.Abs(actual))
	return math.Abs(actual-expected) <= e.multiplier*scale
}

func (e multiplierEvaluator) String() string {
	return fmt.Sprintf("multiplier(%v)", e.multiplier)
}

type zeroMarginOrMultiplierEvaluator struct {
	margin     float64
	multiplier float64
}

func (e zeroMarginOrMultiplierEvaluator) Evaluate(expected, actual float64) bool {
	if expected == 0 || actual == 0 {
		return marginEvaluator{margin: e.margin}.Evaluate(expected, actual)
	}
	return multiplierEvaluator{multiplier: e.multiplier}.Evaluate(expected, actual)
}

func (e zeroMarginOrMultiplierEvaluator) String() string {
	return fmt.Sprintf("zeroMarginOrMultiplier(%v, %v)", e.margin, e.multiplier)
}

// Margin creates an Evaluator that treats two values as equal when their
// absolute difference is at most margin.
func Margin(margin float64) (Evaluator, error) {
	if margin < 0 {
		return nil, errors.NotValidf("negative margin %v", margin)
	}
	return marginEvaluator{margin: margin}, nil
}

// Multiplier creates an Evaluator that treats two values as equal when their
// absolute difference is at most multiplier times the larger magnitude of
// the two. When both operands are zero only exact equality passes.
func Multiplier(multiplier float64) (Evaluator, error) {
	if multiplier < 0 {
		return nil, errors.NotValidf("negative multiplier %v", multiplier)
	}
	return multiplierEvaluator{multiplier: multiplier}, nil
}

// ZeroMarginOrMultiplier creates an Evaluator that applies margin semantics
// when either operand is zero and multiplier semantics otherwise. Relative
// tolerance collapses near zero, so an absolute threshold takes over there.
func ZeroMarginOrMultiplier(margin, multiplier float64) (Evaluator, error) {
	if margin < 0 {
		return nil, errors.NotValidf("negative margin %v", margin)
	}
	if multiplier < 0 {
		return nil, errors.NotValidf("negative multiplier %v", multiplier)
	}
	return zeroMarginOrMultiplierEvaluator{margin: margin, multiplier: multiplier}, nil
}
