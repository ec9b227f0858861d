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

// Package approx evaluates approximate equality of floating-point scalars
// and vectors inside tests, where exact comparison breaks down under
// rounding error.
//
// An Evaluator decides whether two float64 values are close enough. Margin
// applies an absolute tolerance, Multiplier a relative one scaled by the
// larger magnitude, and ZeroMarginOrMultiplier falls back to the absolute
// tolerance when either operand is zero. Any type implementing Evaluator
// works in place of the built-ins.
//
// Two build tags change how the package is compiled:
//
//   - nanequality: NaN compares equal to NaN in the scalar engine. Without
//     the tag any NaN operand short-circuits to unequal, mirroring IEEE-754
//     unordered semantics.
//   - approxnoop: accepted for tooling compatibility, deliberately without
//     effect.
//
// The tolassert package reports engine results as test failures.
package approx
