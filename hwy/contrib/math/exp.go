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

// exp2Limits returns the arguments at and above which 2^x overflows and
// below which it underflows to zero.
func exp2Limits[T hwy.Floats]() (hi, lo T) {
	return pick[T](128, 1024), pick[T](-150, -1075)
}

// exp2Core rebuilds 2^(e+f) from an integral e and f in [0, 1).
func exp2Core[T hwy.Floats](f, e hwy.Vec[T]) hwy.Vec[T] {
	p := poly.Polynomial(f, coeffs[T](exp2Coeffs_f32, exp2Coeffs_f64))
	return Ldexp(p, e)
}

// exp2Special applies overflow, underflow and NaN sentinels, where t is
// the argument measured in powers of two.
func exp2Special[T hwy.Floats](result, x, t hwy.Vec[T]) hwy.Vec[T] {
	hi, lo := exp2Limits[T]()
	result = hwy.Merge(hwy.Set(T(stdmath.Inf(1))), result, hwy.GreaterEqual(t, hwy.Set(hi)))
	result = hwy.Merge(hwy.Zero[T](), result, hwy.Less(t, hwy.Set(lo)))
	return hwy.Merge(x, result, hwy.IsNaN(x))
}

// Exp2 computes 2^x for each lane.
//
// Algorithm:
//  1. e = floor(x), f = x - e in [0, 1)
//  2. 2^f by polynomial
//  3. Result = 2^f * 2^e, with 2^e composed from the exponent field
//
// Special cases:
//   - Exp2(x >= 128 / 1024) = +Inf (float32 / float64)
//   - Exp2(x < -150 / -1075) = 0
//   - Exp2(NaN) = NaN
func Exp2[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	hi, lo := exp2Limits[T]()
	xc := hwy.Clamp(x, hwy.Set(lo), hwy.Set(hi))
	e := hwy.Floor(xc)
	result := exp2Core(hwy.Sub(xc, e), e)
	return exp2Special(result, x, x)
}

// expScaled computes base^x where log2Base = log2(base) and logBase
// (split into hi and lo) = 1/log2Base.
//
// The integral exponent k = floor(x*log2Base) is taken first and the
// remainder r = x - k/log2Base is reduced with fused multiply-adds, so the
// fraction handed to the polynomial carries no error from the scaling of
// large arguments.
func expScaled[T hwy.Floats](x hwy.Vec[T], log2Base, invHi, invLo T) hwy.Vec[T] {
	hi, lo := exp2Limits[T]()
	t := hwy.Mul(x, hwy.Set(log2Base))
	k := hwy.Floor(hwy.Clamp(t, hwy.Set(lo), hwy.Set(hi)))

	r := hwy.NegMulAdd(k, hwy.Set(invHi), x)
	r = hwy.NegMulAdd(k, hwy.Set(invLo), r)
	f := hwy.Mul(r, hwy.Set(log2Base))

	return exp2Special(exp2Core(f, k), x, t)
}

// Exp computes e^x for each lane.
//
// Algorithm: k = floor(x*log2(e)), r = x - k*ln2 (Cody-Waite), then
// e^x = 2^(r*log2(e)) * 2^k through the Exp2 polynomial.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - Exp(x) = +Inf when x*log2(e) >= 128 (float32) or 1024 (float64)
func Exp[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return expScaled(x, T(log2e), pick[T](ln2Hi_f32, ln2Hi_f64), pick[T](ln2Lo_f32, ln2Lo_f64))
}

// Exp10 computes 10^x for each lane, reducing by log10(2) the same way
// Exp reduces by ln2.
func Exp10[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return expScaled(x, T(log2of10), pick[T](log10of2Hi_f32, log10of2Hi_f64), pick[T](log10of2Lo_f32, log10of2Lo_f64))
}

// Expm1 computes e^x - 1 for each lane.
//
// For |x| < ln2/2 a dedicated polynomial x*P(x) is used, which avoids the
// cancellation in Exp(x)-1; elsewhere the result is Exp(x)-1.
//
// Special cases:
//   - Expm1(±0) = ±0
//   - Expm1(+Inf) = +Inf
//   - Expm1(-Inf) = -1
//   - Expm1(NaN) = NaN
func Expm1[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	small := hwy.Less(hwy.Abs(x), hwy.Set(T(ln2/2)))

	near := hwy.Mul(x, poly.Polynomial(x, coeffs[T](expm1Coeffs_f32, expm1Coeffs_f64)))
	far := hwy.Sub(Exp(x), hwy.Set[T](1))

	return hwy.Merge(near, far, small)
}
