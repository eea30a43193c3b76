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

// Package contrib groups the numerical kernels built on the hwy lane
// vectors.
//
// # Subpackages
//
//   - algo: apply a kernel over whole slices, serially or in parallel
//   - math: frexp/ldexp and the transcendental functions
//   - poly: polynomial and rational evaluation by Horner's rule
//   - solve: real roots of quadratics and cubics inside an interval
//   - limiter: flux limiters for high-resolution schemes
//   - quad: Gauss-Legendre quadrature with 1 to 4 points
//
// Every kernel is generic over float32 and float64 lanes and works on any
// lane count, so the same code runs at every dispatch width:
//
//	import (
//	    "github.com/ajroetker/hwymath/hwy/contrib/algo"
//	    "github.com/ajroetker/hwymath/hwy/contrib/math"
//	)
//
//	algo.Apply(input, output, math.Erf[float32])
package contrib
