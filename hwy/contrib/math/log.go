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

package math

import (
	stdmath "math"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/poly"
)

// logParts splits x = m * 2^e with m in [√½, √2) and returns e together
// with ln(m) = 2s * P(s²), s = (m-1)/(m+1).
func logParts[T hwy.Floats](x hwy.Vec[T]) (e, lnm hwy.Vec[T]) {
	one := hwy.Set[T](1)

	m, e := Frexp(x)
	low := hwy.Less(m, hwy.Set(T(sqrtHalf)))
	m = hwy.Merge(hwy.Add(m, m), m, low)
	e = hwy.Merge(hwy.Sub(e, one), e, low)

	s := hwy.Div(hwy.Sub(m, one), hwy.Add(m, one))
	z := hwy.Mul(s, s)
	lnm = hwy.Mul(hwy.Add(s, s), poly.Polynomial(z, coeffs[T](logCoeffs_f32, logCoeffs_f64)))
	return e, lnm
}

// logSpecial applies the domain sentinels shared by every logarithm.
func logSpecial[T hwy.Floats](result, x hwy.Vec[T]) hwy.Vec[T] {
	zero := hwy.Zero[T]()
	result = hwy.Merge(hwy.Set(T(stdmath.Inf(-1))), result, hwy.Equal(x, zero))
	result = hwy.Merge(hwy.Set(T(stdmath.NaN())), result, hwy.Less(x, zero))
	return hwy.Merge(x, result, hwy.MaskOr(hwy.IsInf(x, 1), hwy.IsNaN(x)))
}

// Log2 computes log₂(x) for each lane.
//
// Algorithm:
//  1. Decompose x = m * 2^e and shift m into [√½, √2)
//  2. ln(m) from the atanh series in s = (m-1)/(m+1)
//  3. Result = e + ln(m) * log₂(e)
//
// Special cases:
//   - Log2(+Inf) = +Inf
//   - Log2(±0) = -Inf
//   - Log2(x < 0) = NaN
//   - Log2(NaN) = NaN
func Log2[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	e, lnm := logParts(x)
	return logSpecial(hwy.MulAdd(lnm, hwy.Set(T(log2e)), e), x)
}

// Log computes the natural logarithm of each lane.
//
// Algorithm: as Log2, with the result rebuilt as e*ln2 + ln(m), where ln2
// is split into a head and tail to keep e*ln2 exact.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(±0) = -Inf
//   - Log(x < 0) = NaN
//   - Log(NaN) = NaN
func Log[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	e, lnm := logParts(x)
	r := hwy.MulAdd(e, hwy.Set(pick[T](ln2Lo_f32, ln2Lo_f64)), lnm)
	r = hwy.MulAdd(e, hwy.Set(pick[T](ln2Hi_f32, ln2Hi_f64)), r)
	return logSpecial(r, x)
}

// Log10 computes log₁₀(x) for each lane as e*log₁₀(2) + ln(m)*log₁₀(e).
// Special cases follow Log.
func Log10[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	e, lnm := logParts(x)
	r := hwy.MulAdd(e, hwy.Set(pick[T](log10of2Lo_f32, log10of2Lo_f64)), hwy.Mul(lnm, hwy.Set(T(log10e))))
	r = hwy.MulAdd(e, hwy.Set(pick[T](log10of2Hi_f32, log10of2Hi_f64)), r)
	return logSpecial(r, x)
}

// Log1p computes ln(1+x) for each lane, accurate for x near zero.
//
// Algorithm: u = 1+x rounds away the low bits of x; multiplying ln(u) by
// x/(u-1) restores them. When u == 1 the result is x.
//
// Special cases:
//   - Log1p(±0) = ±0
//   - Log1p(-1) = -Inf
//   - Log1p(x < -1) = NaN
//   - Log1p(+Inf) = +Inf
//   - Log1p(NaN) = NaN
func Log1p[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	u := hwy.Add(one, x)
	um1 := hwy.Sub(u, one)

	result := hwy.Mul(Log(u), hwy.Div(x, um1))
	result = hwy.Merge(x, result, hwy.Equal(u, one))
	result = hwy.Merge(hwy.Set(T(stdmath.Inf(-1))), result, hwy.Equal(u, hwy.Zero[T]()))
	return hwy.Merge(x, result, hwy.IsInf(x, 1))
}
