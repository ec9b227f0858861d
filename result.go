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

// Outcome classifies a comparison.
type Outcome int

const (
	// ExactlyEqual means the comparands were identical.
	ExactlyEqual Outcome = iota
	// ApproximatelyEqual means the comparands differed within tolerance.
	ApproximatelyEqual
	// Unequal means the comparands differed beyond tolerance.
	Unequal
)

func (o Outcome) String() string {
	switch o {
	case ExactlyEqual:
		return "exactly equal"
	case ApproximatelyEqual:
		return "approximately equal"
	case Unequal:
		return "unequal"
	default:
		return "unknown"
	}
}

// ScalarResult is the outcome of a single scalar comparison.
type ScalarResult struct {
	Outcome Outcome
	// Diff is abs(actual - expected), or NaN when either operand is NaN.
	// It is diagnostic only and never part of the equality decision.
	Diff float64
	// Evaluator produced the verdict. Built-in evaluators describe their
	// kind and parameters through String.
	Evaluator Evaluator
}

// Equal reports whether the comparands were exactly or approximately equal.
func (r ScalarResult) Equal() bool {
	return r.Outcome != Unequal
}

// VectorResult is the outcome of an element-wise vector comparison.
type VectorResult struct {
	Outcome Outcome
	// LengthMismatch is set when the sequences have different lengths. No
	// elements are compared in that case.
	LengthMismatch bool
	ExpectedLen    int
	ActualLen      int
	// Elements holds per-index results in input order. Empty when the
	// lengths differ.
	Elements []ScalarResult
}

// Equal reports whether the sequences have the same length and every element
// compared equal.
func (r VectorResult) Equal() bool {
	return r.Outcome != Unequal
}

// FirstUnequal returns the index and result of the first element that
// compared unequal. ok is false when the vectors compared equal or their
// lengths differ.
func (r VectorResult) FirstUnequal() (index int, elem ScalarResult, ok bool) {
	elem, index, ok = lo.FindIndexOf(r.Elements, func(e ScalarResult) bool {
		return e.Outcome == Unequal
	})
	return
}
