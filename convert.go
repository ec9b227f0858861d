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
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Float64er is implemented by numeric-like types that can report themselves
// as a float64, letting values of arbitrary types flow through the engines.
type Float64er interface {
	Float64() float64
}

// Number covers the builtin numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float64s widens a slice of builtin numerics to float64 for EvaluateVector.
func Float64s[T Number](values []T) []float64 {
	return lo.Map(values, func(v T, _ int) float64 { return float64(v) })
}
