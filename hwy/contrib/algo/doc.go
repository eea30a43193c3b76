// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package algo applies lane-vector kernels to whole slices.
//
// # Bulk API
//
// The Apply functions process a slice one vector at a time, including the
// tail, without a scalar fallback:
//   - Apply(in, out, fn) for unary kernels such as math.Exp
//   - Apply2(a, b, out, fn) for binary kernels such as math.Pow
//
// The parallel variants split the slice into chunks that are a multiple of
// the vector width and evaluate them on a bounded set of goroutines:
//   - ParallelApply(ctx, in, out, fn)
//   - ParallelApply2(ctx, a, b, out, fn)
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/hwymath/hwy/contrib/algo"
//	    "github.com/ajroetker/hwymath/hwy/contrib/math"
//	)
//
//	func Erf(input []float64) []float64 {
//	    output := make([]float64, len(input))
//	    algo.Apply(input, output, math.Erf[float64])
//	    return output
//	}
package algo
