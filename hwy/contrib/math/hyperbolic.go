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
)

// hyperbolicLarge returns the magnitude beyond which e^-|x| is negligible
// next to e^|x|.
func hyperbolicLarge[T hwy.Floats]() T {
	return pick[T](9, 22)
}

// halfExp computes e^|x|/2 as (e^(|x|/2)/2) * e^(|x|/2), which stays
// finite for |x| up to the float maximum's logarithm plus ln2.
func halfExp[T hwy.Floats](a hwy.Vec[T]) hwy.Vec[T] {
	h := Exp(hwy.Mul(a, hwy.Set[T](0.5)))
	return hwy.Mul(hwy.Mul(h, hwy.Set[T](0.5)), h)
}

// Sinh computes the hyperbolic sine of each lane.
//
// Algorithm: sinh(x) = (expm1(x) - expm1(-x)) / 2, which is accurate near
// zero; for large |x| the result is ±e^|x|/2.
//
// Special cases:
//   - Sinh(±0) = ±0
//   - Sinh(±Inf) = ±Inf
//   - Sinh(NaN) = NaN
func Sinh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	a := hwy.Abs(x)
	r := hwy.Mul(hwy.Set[T](0.5), hwy.Sub(Expm1(x), Expm1(hwy.Neg(x))))
	large := hwy.CopySign(halfExp(a), x)
	return hwy.Merge(large, r, hwy.Greater(a, hwy.Set(hyperbolicLarge[T]())))
}

// Cosh computes the hyperbolic cosine of each lane.
//
// Algorithm: cosh(x) = (e^x + e^-x) / 2; for large |x| the result is
// e^|x|/2.
//
// Special cases:
//   - Cosh(±0) = 1
//   - Cosh(±Inf) = +Inf
//   - Cosh(NaN) = NaN
func Cosh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	a := hwy.Abs(x)
	e := Exp(a)
	r := hwy.Mul(hwy.Set[T](0.5), hwy.Add(e, hwy.Div(hwy.Set[T](1), e)))
	return hwy.Merge(halfExp(a), r, hwy.Greater(a, hwy.Set(hyperbolicLarge[T]())))
}

// Tanh computes the hyperbolic tangent of each lane.
//
// Algorithm: tanh(x) = expm1(2x) / (expm1(2x) + 2), clamped to ±1 once
// |x| exceeds the point where tanh rounds to 1.
//
// Special cases:
//   - Tanh(±0) = ±0
//   - Tanh(±Inf) = ±1
//   - Tanh(NaN) = NaN
func Tanh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	em1 := Expm1(hwy.Add(x, x))
	r := hwy.Div(em1, hwy.Add(em1, hwy.Set[T](2)))
	sat := hwy.Greater(hwy.Abs(x), hwy.Set(hyperbolicLarge[T]()))
	return hwy.Merge(hwy.CopySign(hwy.Set[T](1), x), r, sat)
}

// inverseLarge returns the magnitude beyond which 1 + x² rounds to x².
func inverseLarge[T hwy.Floats]() T {
	return pick[T](1<<12, 1<<28)
}

// Asinh computes the inverse hyperbolic sine of each lane.
//
// Algorithm: asinh(a) = log1p(a + a²/(1 + sqrt(1 + a²))) for a = |x|,
// and log(a) + ln2 for large a, with the sign of x reattached.
//
// Special cases:
//   - Asinh(±0) = ±0
//   - Asinh(±Inf) = ±Inf
//   - Asinh(NaN) = NaN
func Asinh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	a := hwy.Abs(x)
	a2 := hwy.Mul(a, a)

	r := Log1p(hwy.Add(a, hwy.Div(a2, hwy.Add(one, hwy.Sqrt(hwy.Add(one, a2))))))
	large := hwy.Add(Log(a), hwy.Set(T(ln2)))
	r = hwy.Merge(large, r, hwy.Greater(a, hwy.Set(inverseLarge[T]())))
	return hwy.CopySign(r, x)
}

// Acosh computes the inverse hyperbolic cosine of each lane.
//
// Algorithm: with t = x - 1, acosh(x) = log1p(t + sqrt(t*(t+2))), and
// log(x) + ln2 for large x.
//
// Special cases:
//   - Acosh(1) = 0
//   - Acosh(x < 1) = NaN
//   - Acosh(+Inf) = +Inf
//   - Acosh(NaN) = NaN
func Acosh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	t := hwy.Sub(x, one)

	r := Log1p(hwy.Add(t, hwy.Sqrt(hwy.Mul(t, hwy.Add(t, hwy.Set[T](2))))))
	large := hwy.Add(Log(x), hwy.Set(T(ln2)))
	r = hwy.Merge(large, r, hwy.Greater(x, hwy.Set(inverseLarge[T]())))
	return hwy.Merge(hwy.Set(T(stdmath.NaN())), r, hwy.Less(x, one))
}

// Atanh computes the inverse hyperbolic tangent of each lane.
//
// Algorithm: atanh(a) = log1p(2a/(1-a)) / 2 for a = |x|, with the sign of
// x reattached.
//
// Special cases:
//   - Atanh(±0) = ±0
//   - Atanh(±1) = ±Inf
//   - Atanh(x) = NaN for |x| > 1, selected explicitly
//   - Atanh(NaN) = NaN
func Atanh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	a := hwy.Abs(x)

	r := hwy.Mul(hwy.Set[T](0.5), Log1p(hwy.Div(hwy.Add(a, a), hwy.Sub(one, a))))
	r = hwy.CopySign(r, x)
	return hwy.Merge(hwy.Set(T(stdmath.NaN())), r, outsideUnit(x))
}
