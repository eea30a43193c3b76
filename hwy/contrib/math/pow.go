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

// isIntegral reports the lanes of v that hold an integer value
// (including ±Inf).
func isIntegral[T hwy.Floats](v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(hwy.Trunc(v), v)
}

// isOdd reports the integral lanes of v that are odd.
func isOdd[T hwy.Floats](v hwy.Vec[T]) hwy.Mask[T] {
	half := hwy.Mul(v, hwy.Set[T](0.5))
	return hwy.MaskAnd(isIntegral(v), hwy.MaskNot(isIntegral(half)))
}

// Pown computes x^n for lanes where n holds an integer.
//
// Algorithm: binary exponentiation over |n|. When n < 0 the base is
// inverted first. The loop runs until every lane's remaining exponent is
// zero, at most once per possible exponent bit; lanes that finish early
// keep their result through masked updates.
//
// Special cases:
//   - Pown(x, 0) = 1 for any x, including NaN
//   - Pown(±0, n < 0) = ±Inf (sign of x for odd n)
//   - Pown(x, +Inf) = +Inf for |x| > 1, 0 for |x| < 1
//   - Pown(x, -Inf) = 0 for |x| > 1, +Inf for |x| < 1
//   - Pown(±1, ±Inf) = 1
//   - Pown(x, NaN) = NaN
func Pown[T hwy.Floats](x, n hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	zero := hwy.Zero[T]()
	half := hwy.Set[T](0.5)

	finite := hwy.IsFinite(n)
	base := hwy.Merge(hwy.Div(one, x), x, hwy.Less(n, zero))
	k := hwy.IfThenElseZero(finite, hwy.Abs(n))
	result := one

	for range hwy.LayoutOf[T]().Bias + 2 {
		active := hwy.Greater(k, zero)
		if !active.AnyTrue() {
			break
		}
		next := hwy.Floor(hwy.Mul(k, half))
		odd := hwy.Greater(hwy.Sub(k, hwy.Add(next, next)), zero)
		result = hwy.Merge(hwy.Mul(result, base), result, odd)
		base = hwy.Mul(base, base)
		k = next
	}

	ax := hwy.Abs(x)
	grows := hwy.MaskOr(
		hwy.MaskAnd(hwy.Greater(ax, one), hwy.Greater(n, zero)),
		hwy.MaskAnd(hwy.Less(ax, one), hwy.Less(n, zero)),
	)
	limit := hwy.Merge(hwy.Set(T(stdmath.Inf(1))), zero, grows)
	limit = hwy.Merge(one, limit, hwy.Equal(ax, one))
	limit = hwy.Merge(hwy.Add(x, n), limit, hwy.MaskOr(hwy.IsNaN(x), hwy.IsNaN(n)))
	return hwy.Merge(result, limit, finite)
}

// maxPownExponent bounds the exponents handled by Pown in Pow.
const maxPownExponent = 1 << 31

// Pow computes x^y for each lane.
//
// Algorithm: lanes whose exponent is an integer below 2^31 in magnitude
// use Pown; every other lane computes 2^(y*log₂|x|) and restores the sign
// of x for odd integral y.
//
// Special cases:
//   - Pow(x, ±0) = 1 for any x
//   - Pow(1, y) = 1 for any y
//   - Pow(x < 0, y) = NaN for finite non-integer y
//   - Pow(±0, y < 0) = +Inf (±Inf for odd integer y)
//   - Pow(x, NaN) = Pow(NaN, y) = NaN otherwise
func Pow[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	zero := hwy.Zero[T]()

	integral := isIntegral(y)
	small := hwy.MaskAnd(integral, hwy.Less(hwy.Abs(y), hwy.Set(T(maxPownExponent))))

	viaPown := Pown(x, hwy.IfThenElseZero(small, y))

	ax := hwy.Abs(x)
	viaExp := Exp2(hwy.Mul(y, Log2(ax)))
	negX := hwy.Less(x, zero)
	viaExp = hwy.Merge(hwy.Neg(viaExp), viaExp, hwy.MaskAnd(negX, isOdd(y)))
	viaExp = hwy.Merge(hwy.Set(T(stdmath.NaN())), viaExp, hwy.MaskAndNot(integral, negX))

	result := hwy.Merge(viaPown, viaExp, small)
	return hwy.Merge(one, result, hwy.MaskOr(hwy.Equal(y, zero), hwy.Equal(x, one)))
}

// Cbrt computes the cube root of each lane.
//
// Algorithm: y = Pow(|x|, 1/3), polished by one Newton step
// y = (2y + |x|/y²) / 3 on finite nonzero lanes, with the sign of x
// reattached.
//
// Special cases:
//   - Cbrt(±0) = ±0
//   - Cbrt(±Inf) = ±Inf
//   - Cbrt(NaN) = NaN
func Cbrt[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	a := hwy.Abs(x)
	y := Pow(a, hwy.Set(T(1.0/3.0)))

	newton := hwy.Div(hwy.Add(hwy.Add(y, y), hwy.Div(a, hwy.Mul(y, y))), hwy.Set[T](3))
	polish := hwy.MaskAnd(hwy.IsFinite(a), hwy.Greater(a, hwy.Zero[T]()))
	y = hwy.Merge(newton, y, polish)

	return hwy.CopySign(y, x)
}

// Hypot computes sqrt(x² + y²) for each pair of lanes without undue
// overflow or underflow.
//
// Algorithm: with a = max(|x|,|y|) and b = min(|x|,|y|),
// hypot = a * sqrt(1 + (b/a)²).
//
// Special cases:
//   - Hypot(±Inf, y) = Hypot(x, ±Inf) = +Inf, even when the other is NaN
//   - Hypot(NaN, y) = Hypot(x, NaN) = NaN otherwise
//   - Hypot(0, 0) = 0
func Hypot[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	zero := hwy.Zero[T]()
	ax, ay := hwy.Abs(x), hwy.Abs(y)
	a := hwy.Max(ax, ay)
	b := hwy.Min(ax, ay)

	r := hwy.Div(b, a)
	h := hwy.Mul(a, hwy.Sqrt(hwy.MulAdd(r, r, hwy.Set[T](1))))
	h = hwy.Merge(zero, h, hwy.Equal(a, zero))

	h = hwy.Merge(hwy.Set(T(stdmath.NaN())), h, hwy.MaskOr(hwy.IsNaN(x), hwy.IsNaN(y)))
	return hwy.Merge(hwy.Set(T(stdmath.Inf(1))), h, hwy.MaskOr(hwy.IsInf(x, 0), hwy.IsInf(y, 0)))
}
