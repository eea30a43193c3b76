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

// Frexp decomposes each lane into a significand in [0.5, 1) and an
// integral exponent such that x = frac * 2^exp. The exponent lanes hold
// exact integers in the float type.
//
// Algorithm: read the biased exponent field through the bit view and
// replace it with the bias-1 pattern to get the significand. Subnormal
// lanes are first multiplied by 2^(mantissa+2) and the exponent corrected.
//
// Special cases:
//   - Frexp(±0) = ±0, 0
//   - Frexp(±Inf) = ±Inf, 0
//   - Frexp(NaN) = NaN, 0
func Frexp[T hwy.Floats](x hwy.Vec[T]) (frac, exp hwy.Vec[T]) {
	l := hwy.LayoutOf[T]()
	zero := hwy.Zero[T]()
	shift := int(l.MantissaBits) + 2
	scale := hwy.Set(T(stdmath.Ldexp(1, shift)))

	expField := hwy.BitCast(x).And(l.ExponentMask)
	isZero := hwy.Equal(x, zero)
	subnormal := hwy.MaskAndNot(isZero, expField.EqualConst(0))
	special := hwy.MaskOr(isZero, expField.EqualConst(l.ExponentMask))

	xs := hwy.Merge(hwy.Mul(x, scale), x, subnormal)
	bits := hwy.BitCast(xs)

	e := bits.And(l.ExponentMask).ShiftRight(l.MantissaBits).ConvertToFloat()
	e = hwy.Sub(e, hwy.Set(T(l.Bias-1)))
	e = hwy.Merge(hwy.Sub(e, hwy.Set(T(shift))), e, subnormal)

	f := hwy.FromBits(bits.AndNot(l.ExponentMask).OrConst(uint64(l.Bias-1) << l.MantissaBits))

	frac = hwy.Merge(x, f, special)
	exp = hwy.Merge(zero, e, special)
	return frac, exp
}

// Exp2N composes 2^n for lanes holding integral n by writing n+bias into
// the exponent field of a zero-mantissa pattern.
//
// Special cases:
//   - n above the largest exponent: +Inf
//   - n in the subnormal range: a single mantissa bit, shifted into place
//   - n below the smallest subnormal exponent: 0
//   - n NaN: NaN
func Exp2N[T hwy.Floats](n hwy.Vec[T]) hwy.Vec[T] {
	l := hwy.LayoutOf[T]()
	bias := T(l.Bias)
	minNormal := 1 - bias
	minSubnormal := minNormal - T(l.MantissaBits)

	nc := hwy.Clamp(n, hwy.Set(minSubnormal), hwy.Set(bias))

	biased := hwy.Max(hwy.Add(nc, hwy.Set(bias)), hwy.Set[T](1))
	normal := hwy.FromBits(hwy.ConvertToBits(biased).ShiftLeft(l.MantissaBits))

	// 2^(minNormal-1) is the top mantissa bit; lower powers shift it right.
	count := hwy.Max(hwy.Sub(hwy.Set(minNormal-1), nc), hwy.Zero[T]())
	top := hwy.BitCast(hwy.Zero[T]()).OrConst(1 << (l.MantissaBits - 1))
	subnormal := hwy.FromBits(top.ShiftRightLanes(hwy.ConvertToBits(count)))

	result := hwy.Merge(subnormal, normal, hwy.Less(nc, hwy.Set(minNormal)))
	result = hwy.Merge(hwy.Set(T(stdmath.Inf(1))), result, hwy.Greater(n, hwy.Set(bias)))
	result = hwy.Merge(hwy.Zero[T](), result, hwy.Less(n, hwy.Set(minSubnormal)))
	return hwy.Merge(n, result, hwy.IsNaN(n))
}

// Ldexp computes x * 2^n for lanes holding integral n.
//
// n is clamped to ±(2·bias + mantissa bits + 1), beyond which every
// nonzero finite x overflows or underflows. When 2^n is a normal number
// the scale is one multiply; otherwise it is applied in three parts so
// that results whose scale factor alone would overflow or underflow, such
// as a subnormal x with a large n, are still exact.
//
// Special cases:
//   - Ldexp(±0, n) = ±0
//   - Ldexp(x, NaN) = NaN
func Ldexp[T hwy.Floats](x, n hwy.Vec[T]) hwy.Vec[T] {
	l := hwy.LayoutOf[T]()
	limit := T(2*l.Bias + int(l.MantissaBits) + 1)
	nc := hwy.Clamp(n, hwy.Set(-limit), hwy.Set(limit))

	third := hwy.Trunc(hwy.Div(nc, hwy.Set[T](3)))
	rest := hwy.Sub(nc, hwy.Add(third, third))
	s := Exp2N(third)
	r := hwy.Mul(hwy.Mul(hwy.Mul(x, s), s), Exp2N(rest))

	normal := hwy.MaskAnd(hwy.GreaterEqual(nc, hwy.Set(1-T(l.Bias))), hwy.LessEqual(nc, hwy.Set(T(l.Bias))))
	r = hwy.Merge(hwy.Mul(x, Exp2N(nc)), r, normal)

	r = hwy.Merge(x, r, hwy.Equal(x, hwy.Zero[T]()))
	return hwy.Merge(n, r, hwy.IsNaN(n))
}
