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

// Package math provides vectorized elementary functions over hwy lane vectors.
//
// Every function is generic over float32 and float64 lanes and follows the
// same pipeline: reduce the argument into the interval where a polynomial
// or rational approximation is accurate, evaluate the approximation with
// poly.Polynomial or poly.Rational, then rebuild the result. Lanes that need
// different formulas compute every candidate and pick one with hwy.Merge;
// no lane is ever branched on.
//
// Out-of-domain inputs produce IEEE 754 sentinels (NaN, ±Inf, 0) by mask.
// No function panics or returns an error.
//
// # Functions
//
// Exponential and logarithmic:
//   - Exp2, Exp, Exp10, Expm1
//   - Log2, Log, Log10, Log1p
//   - Pown, Pow, Cbrt, Hypot
//
// Trigonometric:
//   - Sin, Cos, Sincos, Tan
//   - Atan, Atan2, Asin, Acos
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//
// Special functions:
//   - Erf, Erfc
//
// Bit-level helpers:
//   - Frexp (decompose), Exp2N (compose), Ldexp
//
// # Accuracy
//
// float64 results are within a few ULP of the correctly rounded value on
// the reduced domains; float32 results are within about 1e-6 relative.
// Lookup by name is available through LookupUnary and LookupBinary.
package math
